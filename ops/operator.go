package ops

import (
	"github.com/sneldao/snel-sub004/values"
)

// Env is the part of the machine an operator may touch besides its operands.
type Env interface {
	Bind(name string, value values.Value)
	Skip(lines int)
	Record(effect Effect)
}

type Input struct {
	Name    string
	Accepts values.Constraint
}

type Operator struct {
	Name    string
	Doc     string
	Inputs  []Input
	Outputs []values.Kind

	// NeedsLiteral marks operators that are meaningless without literal operands on the line.
	NeedsLiteral bool

	// Resolve runs after the per-position check. It may reject combinations of operands
	// and returns operands in the order Apply expects.
	Resolve func(operands []values.Value) ([]values.Value, error)

	Apply func(env Env, operands []values.Value) ([]values.Value, error)
}

func (o *Operator) Arity() int {
	return len(o.Inputs)
}

// TypeCheck validates operands given in declared order.
func (o *Operator) TypeCheck(operands []values.Value) ([]values.Value, error) {
	if len(operands) != len(o.Inputs) {
		return nil, &EmptyStackError{
			Operator: o.Name,
			Want:     len(o.Inputs),
			Have:     len(operands),
		}
	}
	for i, input := range o.Inputs {
		if !input.Accepts.Accepts(operands[i]) {
			return nil, &TypeMismatchError{
				Operator: o.Name,
				Position: i + 1,
				Input:    input.Name,
				Want:     input.Accepts,
				Got:      operands[i],
			}
		}
	}
	if o.Resolve != nil {
		return o.Resolve(operands)
	}
	return operands, nil
}

// Call type-checks and applies. Apply never sees operands that failed the check.
func (o *Operator) Call(env Env, operands []values.Value) ([]values.Value, error) {
	resolved, err := o.TypeCheck(operands)
	if err != nil {
		return nil, err
	}
	if o.Apply == nil {
		return nil, nil
	}
	return o.Apply(env, resolved)
}
