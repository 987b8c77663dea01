package ops

import (
	"math"

	"github.com/sneldao/snel-sub004/values"
)

const (
	OpPush        = "PUSH"
	OpPop         = "POP"
	OpAdd         = "ADD"
	OpSub         = "SUB"
	OpMul         = "MUL"
	OpDiv         = "DIV"
	OpGreaterThan = "GREATER_THAN"
	OpEqual       = "EQUAL"
	OpSwap        = "SWAP"
	OpDup         = "DUP"
	OpBranch      = "BRANCH"
	OpAssign      = "ASSIGN"
)

func Base() []*Operator {
	return []*Operator{
		{
			Name:         OpPush,
			Doc:          "Push the literal operands written after it, left to right.",
			NeedsLiteral: true,
		},
		{
			Name:   OpPop,
			Doc:    "Discard the top value.",
			Inputs: []Input{{"value", values.Any}},
		},
		arithmetic(OpAdd, "Add two numbers of the same kind.", func(a, b int64) (int64, string) {
			r := a + b
			if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
				return 0, integerOverflow
			}
			return r, ""
		}, func(a, b float64) (float64, string) {
			return a + b, ""
		}),
		arithmetic(OpSub, "Subtract the top number from the one below it.", func(a, b int64) (int64, string) {
			r := a - b
			if (a >= 0 && b < 0 && r < 0) || (a < 0 && b > 0 && r >= 0) {
				return 0, integerOverflow
			}
			return r, ""
		}, func(a, b float64) (float64, string) {
			return a - b, ""
		}),
		arithmetic(OpMul, "Multiply two numbers of the same kind.", func(a, b int64) (int64, string) {
			if a == 0 || b == 0 {
				return 0, ""
			}
			r := a * b
			if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
				return 0, integerOverflow
			}
			return r, ""
		}, func(a, b float64) (float64, string) {
			return a * b, ""
		}),
		arithmetic(OpDiv, "Divide the lower number by the top number. Integer division truncates.", func(a, b int64) (int64, string) {
			if b == 0 {
				return 0, "division by zero"
			}
			if a == math.MinInt64 && b == -1 {
				return 0, integerOverflow
			}
			return a / b, ""
		}, func(a, b float64) (float64, string) {
			if b == 0 {
				return 0, "division by zero"
			}
			return a / b, ""
		}),
		{
			Name: OpGreaterThan,
			Doc:  "Push true if the lower value is greater than the top value. Both must be the same kind; token amounts must share a token.",
			Inputs: []Input{
				{"left", values.Comparable},
				{"right", values.Comparable},
			},
			Outputs: []values.Kind{values.KindBoolean},
			Resolve: sameKind(OpGreaterThan),
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				var greater bool
				switch left := operands[0].(type) {
				case values.Integer:
					greater = left > operands[1].(values.Integer)
				case values.Float:
					greater = left > operands[1].(values.Float)
				case values.TokenAmount:
					greater = left.Amount > operands[1].(values.TokenAmount).Amount
				}
				return []values.Value{values.Boolean(greater)}, nil
			},
		},
		{
			Name: OpEqual,
			Doc:  "Push true if the top two values have the same kind and value.",
			Inputs: []Input{
				{"left", values.Any},
				{"right", values.Any},
			},
			Outputs: []values.Kind{values.KindBoolean},
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				return []values.Value{values.Boolean(operands[0] == operands[1])}, nil
			},
		},
		{
			Name: OpSwap,
			Doc:  "Exchange the top two values.",
			Inputs: []Input{
				{"lower", values.Any},
				{"upper", values.Any},
			},
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				return []values.Value{operands[1], operands[0]}, nil
			},
		},
		{
			Name:   OpDup,
			Doc:    "Duplicate the top value.",
			Inputs: []Input{{"value", values.Any}},
			Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
				return []values.Value{operands[0], operands[0]}, nil
			},
		},
		{
			Name: OpBranch,
			Doc:  "Pop a line count and a condition. When the condition is false, skip that many following instructions. Only forward skips exist.",
			Inputs: []Input{
				{"condition", values.OnlyBoolean},
				{"lines", values.OnlyInteger},
			},
			Apply: func(env Env, operands []values.Value) ([]values.Value, error) {
				lines := operands[1].(values.Integer)
				if lines < 0 {
					return nil, &ValueError{
						Operator: OpBranch,
						Reason:   "cannot skip a negative number of lines",
					}
				}
				if !operands[0].(values.Boolean) {
					env.Skip(int(lines))
				}
				return nil, nil
			},
		},
		{
			Name: OpAssign,
			Doc:  "Pop a name and a value and bind the value to the name. Read it back later with &name.",
			Inputs: []Input{
				{"value", values.Any},
				{"name", values.OnlyString},
			},
			Apply: func(env Env, operands []values.Value) ([]values.Value, error) {
				name := string(operands[1].(values.String))
				if !IsVariableName(name) {
					return nil, &ValueError{
						Operator: OpAssign,
						Reason:   "invalid variable name " + operands[1].String(),
					}
				}
				env.Bind(name, operands[0])
				return nil, nil
			},
		},
	}
}

const integerOverflow = "integer overflow"

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func arithmetic(
	name string,
	doc string,
	onInteger func(a, b int64) (int64, string),
	onFloat func(a, b float64) (float64, string),
) *Operator {
	return &Operator{
		Name: name,
		Doc:  doc,
		Inputs: []Input{
			{"left", values.Number},
			{"right", values.Number},
		},
		Outputs: []values.Kind{values.KindInteger, values.KindFloat},
		Resolve: sameKind(name),
		Apply: func(_ Env, operands []values.Value) ([]values.Value, error) {
			var result values.Value
			var problem string
			switch left := operands[0].(type) {
			case values.Integer:
				var r int64
				r, problem = onInteger(int64(left), int64(operands[1].(values.Integer)))
				result = values.Integer(r)
			case values.Float:
				var r float64
				r, problem = onFloat(float64(left), float64(operands[1].(values.Float)))
				if problem == "" && !finite(r) {
					problem = "result " + values.Float(r).String() + " is not a finite number"
				}
				result = values.Float(r)
			}
			if problem != "" {
				return nil, &ValueError{
					Operator: name,
					Reason:   problem,
				}
			}
			return []values.Value{result}, nil
		},
	}
}

// sameKind rejects mixed kinds; numbers are never promoted.
func sameKind(name string) func([]values.Value) ([]values.Value, error) {
	return func(operands []values.Value) ([]values.Value, error) {
		left, right := operands[0], operands[1]
		if left.Kind() != right.Kind() {
			return nil, &TypeMismatchError{
				Operator: name,
				Position: 2,
				Input:    "right",
				Want:     values.Constraint{left.Kind()},
				Got:      right,
				Reason:   "operands must be the same kind",
			}
		}
		if l, ok := left.(values.TokenAmount); ok && l.Token != right.(values.TokenAmount).Token {
			return nil, &TypeMismatchError{
				Operator: name,
				Position: 2,
				Input:    "right",
				Want:     values.OnlyAmount,
				Got:      right,
				Reason:   "token amounts must share a token",
			}
		}
		return operands, nil
	}
}
