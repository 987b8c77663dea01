package generators

import (
	"context"
	"errors"
	"time"
)

type Phase func(ctx context.Context, prev State) (Phase, State, error)

type BuildGeneratePhase func(generator Generator, cont Phase) Phase

const maxRetries = 3

var retryDelay = time.Second

// BuildGeneratePhase retries errors marked ErrRetryable a few times with a growing delay,
// always from the state the phase started with.
func (Module) BuildGeneratePhase() BuildGeneratePhase {
	return func(generator Generator, cont Phase) Phase {
		return func(ctx context.Context, state State) (Phase, State, error) {
			delay := retryDelay
			for retry := 0; ; retry++ {
				newState, err := generator.Generate(ctx, state)
				if err == nil {
					return cont, newState, nil
				}
				if !errors.Is(err, ErrRetryable) || retry >= maxRetries {
					return nil, nil, wrap(err)
				}
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return nil, nil, ctx.Err()
				}
				delay *= 2
			}
		}
	}
}
