package ops

import (
	"fmt"

	"github.com/sneldao/snel-sub004/values"
)

// transferRole is what an operand of MAYBE_TRANSFER_FUNDS stands for.
type transferRole int

const (
	roleFlag transferRole = iota
	roleAmount
	roleDestination
	numTransferRoles
)

var transferOperand = values.Constraint{
	values.KindBoolean,
	values.KindTokenAmount,
	values.KindAddress,
	values.KindUser,
}

var roleConstraints = [numTransferRoles]values.Constraint{
	roleFlag:        values.OnlyBoolean,
	roleAmount:      values.OnlyAmount,
	roleDestination: values.Destination,
}

func (r transferRole) String() string {
	switch r {
	case roleFlag:
		return "flag"
	case roleAmount:
		return "amount"
	case roleDestination:
		return "destination"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func roleOf(v values.Value) transferRole {
	switch v.Kind() {
	case values.KindBoolean:
		return roleFlag
	case values.KindTokenAmount:
		return roleAmount
	}
	return roleDestination
}

// resolveTransferRoles places each operand by its kind, so input order does not matter.
// A role claimed twice is reported at the later operand, wanting the role left unfilled.
func resolveTransferRoles(operands []values.Value) ([]values.Value, error) {
	resolved := make([]values.Value, numTransferRoles)
	for i, operand := range operands {
		role := roleOf(operand)
		if resolved[role] == nil {
			resolved[role] = operand
			continue
		}
		missing := role
		for r := range numTransferRoles {
			if resolved[r] == nil {
				missing = r
				break
			}
		}
		return nil, &TypeMismatchError{
			Operator: OpMaybeTransferFunds,
			Position: i + 1,
			Input:    missing.String(),
			Want:     roleConstraints[missing],
			Got:      operand,
			Reason:   "ambiguous operands, two values fill the " + role.String() + " role",
		}
	}
	return resolved, nil
}
