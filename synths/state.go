package synths

import (
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/stacks"
)

type State uint8

const (
	StateRequest State = iota + 1
	StateVerify
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRequest:
		return "REQUEST"
	case StateVerify:
		return "VERIFY"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

// Event is reported to an Observer on every state entered.
type Event struct {
	Session string
	State   State
	Attempt int
	Program programs.Program
	Error   *stacks.StackError
}

type Observer func(Event)
