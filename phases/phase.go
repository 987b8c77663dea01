package phases

import (
	"context"
)

type Phase func(ctx context.Context, state State) (Phase, State, error)

type PhaseBuilder func(cont Phase) Phase

// Run drives phases until one returns a nil continuation.
func Run(ctx context.Context, phase Phase, state State) (State, error) {
	var err error
	for phase != nil {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		phase, state, err = phase(ctx, state)
		if err != nil {
			return state, err
		}
	}
	return state, nil
}
