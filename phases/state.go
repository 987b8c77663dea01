package phases

import (
	"github.com/sneldao/snel-sub004/plans"
	"github.com/sneldao/snel-sub004/synths"
)

// State is what a chat carries between turns.
type State struct {
	Username string
	Request  synths.Request
	Result   *synths.Result
	Plan     *plans.Plan
	Err      error
	Turns    int
}
