package ops

import (
	"github.com/sneldao/snel-sub004/values"
)

// Effect records what an operator would do outside the machine.
// Simulation only collects effects; executing them is someone else's job.
type Effect interface {
	isEffect()
}

type Transfer struct {
	Amount values.TokenAmount
	To     values.Value // Address or User
}

func (Transfer) isEffect() {}

type Exchange struct {
	From values.TokenAmount
	To   values.Address
	Out  values.TokenAmount
}

func (Exchange) isEffect() {}
