package phases

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/plans"
	"github.com/sneldao/snel-sub004/stacks"
	"github.com/sneldao/snel-sub004/synths"
)

type BuildSynthesize func(synth *synths.Synthesizer, out io.Writer) PhaseBuilder

// BuildSynthesize runs the pending request through the repair loop and reports the outcome.
// Synthesis failures are kept in the state and reported; only fatal errors end the chat.
func (Module) BuildSynthesize(
	resolver plans.UserResolver,
	logger logs.Logger,
) BuildSynthesize {
	return func(synth *synths.Synthesizer, out io.Writer) PhaseBuilder {
		return func(cont Phase) Phase {
			return func(ctx context.Context, state State) (Phase, State, error) {
				state.Turns++
				state.Result = nil
				state.Plan = nil
				state.Err = nil

				result, err := synth.Synthesize(ctx, state.Request)
				if err != nil {
					var stackErr *stacks.StackError
					if !errors.As(err, &stackErr) {
						return nil, state, err
					}
					state.Err = err
					Report(out, nil, nil, err)
					return cont, state, nil
				}
				state.Result = result

				plan, err := plans.Build(result.Effects, resolver)
				if err != nil {
					logger.WarnContext(ctx, "build plan", "session", result.Session, "err", err)
					state.Err = err
				} else {
					state.Plan = &plan
				}
				Report(out, result, state.Plan, state.Err)
				return cont, state, nil
			}
		}
	}
}

// Report prints a synthesis outcome for people.
func Report(w io.Writer, result *synths.Result, plan *plans.Plan, err error) {
	if result != nil {
		fmt.Fprintf(w, "program (%d attempts):\n%s\n", result.Attempts, result.Program)
		fmt.Fprintf(w, "stack: %s\n", stacks.FormatStack(result.Stack))
		if plan != nil {
			fmt.Fprintf(w, "plan:\n%s", plan)
		}
	}
	if err == nil {
		return
	}
	var exhausted *synths.ExhaustedError
	if errors.As(err, &exhausted) {
		fmt.Fprintf(w, "gave up after %d attempts, last candidate:\n%s\n", exhausted.Attempts, exhausted.Program)
	}
	var stackErr *stacks.StackError
	if errors.As(err, &stackErr) {
		fmt.Fprintf(w, "%s\n", stackErr.Diagnostic())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
