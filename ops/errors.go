package ops

import (
	"fmt"

	"github.com/sneldao/snel-sub004/values"
)

// TypeMismatchError reports an operand whose kind is outside the declared constraint.
// Position is 1-based in declared input order.
type TypeMismatchError struct {
	Operator string
	Position int
	Input    string
	Want     values.Constraint
	Got      values.Value
	Reason   string
}

func (t *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("%s operand %d (%s) expects %s, got %s",
		t.Operator,
		t.Position,
		t.Input,
		t.Want,
		values.Describe(t.Got),
	)
	if t.Reason != "" {
		msg += ": " + t.Reason
	}
	return msg
}

type EmptyStackError struct {
	Operator string
	Want     int
	Have     int
}

func (e *EmptyStackError) Error() string {
	return fmt.Sprintf("%s needs %d operands, stack has %d", e.Operator, e.Want, e.Have)
}

// ValueError reports well-typed operands whose values are unusable.
type ValueError struct {
	Operator string
	Reason   string
}

func (v *ValueError) Error() string {
	return v.Operator + ": " + v.Reason
}

type UnknownOperatorError struct {
	Name string
}

func (u *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", u.Name)
}
