package plans

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/values"
)

type Action string

const (
	ActionTransfer Action = "transfer"
	ActionExchange Action = "exchange"
)

// Step is one transaction intent. Amounts are integer base units of Token.
type Step struct {
	Action Action
	Token  common.Address
	Amount *uint256.Int
	// To is the recipient of a transfer, or the token bought by an exchange.
	To common.Address
	// Handle is the @user the recipient was resolved from, if any.
	Handle string
}

func (s Step) String() string {
	switch s.Action {
	case ActionTransfer:
		to := s.To.Hex()
		if s.Handle != "" {
			to = "@" + s.Handle + " (" + to + ")"
		}
		return fmt.Sprintf("transfer %s of %s to %s", s.Amount.Dec(), s.Token.Hex(), to)
	case ActionExchange:
		return fmt.Sprintf("exchange %s of %s for %s", s.Amount.Dec(), s.Token.Hex(), s.To.Hex())
	}
	return string(s.Action)
}

type Plan struct {
	Steps []Step
}

func (p Plan) String() string {
	if len(p.Steps) == 0 {
		return "(nothing to do)"
	}
	var b strings.Builder
	for i, step := range p.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

var ErrBadAmount = errors.New("bad amount")

// Build turns simulated effects into steps, in effect order.
// Zero-amount transfers are dropped.
func Build(effects []ops.Effect, resolver UserResolver) (plan Plan, err error) {
	for i, effect := range effects {
		switch effect := effect.(type) {

		case ops.Transfer:
			amount, err := toUint256(effect.Amount.Amount)
			if err != nil {
				return Plan{}, fmt.Errorf("effect %d: %w", i, err)
			}
			if amount.IsZero() {
				continue
			}
			step := Step{
				Action: ActionTransfer,
				Token:  effect.Amount.Token.Common(),
				Amount: amount,
			}
			switch to := effect.To.(type) {
			case values.Address:
				step.To = to.Common()
			case values.User:
				addr, err := resolver.Resolve(string(to))
				if err != nil {
					return Plan{}, fmt.Errorf("effect %d: %w", i, err)
				}
				step.To = addr
				step.Handle = string(to)
			default:
				return Plan{}, fmt.Errorf("effect %d: bad recipient %s", i, values.Describe(to))
			}
			plan.Steps = append(plan.Steps, step)

		case ops.Exchange:
			amount, err := toUint256(effect.From.Amount)
			if err != nil {
				return Plan{}, fmt.Errorf("effect %d: %w", i, err)
			}
			plan.Steps = append(plan.Steps, Step{
				Action: ActionExchange,
				Token:  effect.From.Token.Common(),
				Amount: amount,
				To:     effect.To.Common(),
			})

		default:
			return Plan{}, fmt.Errorf("effect %d: unknown effect %T", i, effect)
		}
	}
	return plan, nil
}

// toUint256 truncates toward zero.
func toUint256(f values.Float) (*uint256.Int, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadAmount, v)
	}
	i, _ := new(big.Float).SetFloat64(v).Int(nil)
	ret, overflow := uint256.FromBig(i)
	if overflow {
		return nil, fmt.Errorf("%w: %v overflows", ErrBadAmount, v)
	}
	return ret, nil
}
