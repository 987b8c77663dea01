package phases

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/synths"
)

// Prompter reads one line of input. *liner.State is one.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type BuildChat func(synth *synths.Synthesizer, prompter Prompter, out io.Writer) PhaseBuilder

func (Module) BuildChatPhase(
	buildSynthesize BuildSynthesize,
	logger logs.Logger,
	tap debugs.Tap,
) (buildChat BuildChat) {

	buildChat = func(synth *synths.Synthesizer, prompter Prompter, out io.Writer) PhaseBuilder {
		return func(cont Phase) Phase {
			return func(ctx context.Context, state State) (Phase, State, error) {

				var input string
				for input == "" {
					var err error
					input, err = prompter.Prompt(promptFor(state))
					if err != nil {
						switch err {
						case io.EOF, liner.ErrPromptAborted:
							return cont, state, nil
						}
						return nil, state, err
					}
					input = strings.TrimSpace(input)
				}
				prompter.AppendHistory(input)

				again := buildChat(synth, prompter, out)(cont)

				command, arg, _ := strings.Cut(input, " ")
				arg = strings.TrimSpace(arg)
				switch command {

				case "/quit", "/exit":
					return cont, state, nil

				case "/user":
					state.Username = strings.TrimPrefix(arg, "@")
					return again, state, nil

				case "/retry":
					if state.Request.Content == "" {
						fmt.Fprintln(out, "nothing to retry")
						return again, state, nil
					}
					return buildSynthesize(synth, out)(again), state, nil

				case "/write":
					if state.Result == nil {
						fmt.Fprintln(out, "no program to write")
						return again, state, nil
					}
					path := arg
					if path == "" {
						path = "program.snel"
					}
					if err := os.WriteFile(path, []byte(state.Result.Program.Source()+"\n"), 0644); err != nil {
						logger.WarnContext(ctx, "write program", "path", path, "err", err)
					}
					return again, state, nil

				case "/tap":
					tap(ctx, "tap on chat", map[string]any{
						"username": state.Username,
						"request":  state.Request,
						"result":   state.Result,
						"plan":     state.Plan,
						"error":    state.Err,
					})
					return again, state, nil

				}

				state.Request = synths.Request{
					Content:  input,
					Username: state.Username,
				}
				return buildSynthesize(synth, out)(again), state, nil
			}
		}
	}
	return
}

func promptFor(state State) string {
	if state.Username != "" {
		return "@" + state.Username + " >> "
	}
	return ">> "
}
