package values

import (
	"slices"
	"strings"
)

// Constraint is a union of acceptable kinds.
type Constraint []Kind

var Any = Constraint(AllKinds)

var (
	Number      = Constraint{KindInteger, KindFloat}
	Destination = Constraint{KindAddress, KindUser}
	Comparable  = Constraint{KindInteger, KindFloat, KindTokenAmount}
	OnlyInteger = Constraint{KindInteger}
	OnlyFloat   = Constraint{KindFloat}
	OnlyString  = Constraint{KindString}
	OnlyBoolean = Constraint{KindBoolean}
	OnlyAddress = Constraint{KindAddress}
	OnlyAmount  = Constraint{KindTokenAmount}
)

func (c Constraint) Accepts(v Value) bool {
	if v == nil {
		return false
	}
	return slices.Contains(c, v.Kind())
}

func (c Constraint) String() string {
	if len(c) == len(AllKinds) {
		return "Any"
	}
	titles := make([]string, 0, len(c))
	for _, kind := range c {
		titles = append(titles, kind.String())
	}
	return strings.Join(titles, " | ")
}
