package phases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/modes"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/snelconfigs"
	"github.com/sneldao/snel-sub004/synths"
	"github.com/stretchr/testify/require"
)

type lines struct {
	inputs  []string
	history []string
}

func (l *lines) Prompt(string) (string, error) {
	if len(l.inputs) == 0 {
		return "", io.EOF
	}
	ret := l.inputs[0]
	l.inputs = l.inputs[1:]
	return ret, nil
}

func (l *lines) AppendHistory(item string) {
	l.history = append(l.history, item)
}

func reply(source string) synths.Oracle {
	return synths.OracleFunc(func(ctx context.Context, req synths.OracleRequest) (programs.Program, error) {
		return programs.Parse(source), nil
	})
}

func runChat(t *testing.T, maxErrors int, oracle synths.Oracle, inputs ...string) (state State, out string, taps []map[string]any, err error) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/users.cue"}, snelconfigs.Schema)
		},
		func() snelconfigs.MaxErrors {
			return snelconfigs.MaxErrors(maxErrors)
		},
		func() debugs.Tap {
			return func(ctx context.Context, what string, globals map[string]any) {
				taps = append(taps, globals)
			}
		},
	).Call(func(
		buildChat BuildChat,
		newSynthesizer synths.NewSynthesizer,
	) {
		buf := new(bytes.Buffer)
		prompter := &lines{inputs: inputs}
		state, err = Run(t.Context(), buildChat(newSynthesizer(oracle), prompter, buf)(nil), State{})
		out = buf.String()
	})
	return
}

func TestChat(t *testing.T) {
	state, out, taps, err := runChat(t, 1, reply("PUSH 1 2\nADD"),
		"/user @alice",
		"",
		"add one and two",
		"/tap",
		"/retry",
	)
	require.NoError(t, err)
	require.Equal(t, "alice", state.Username)
	require.Equal(t, 2, state.Turns)
	require.Equal(t, "add one and two", state.Request.Content)
	require.Equal(t, "alice", state.Request.Username)
	require.NotNil(t, state.Result)
	require.NotNil(t, state.Plan)
	require.Contains(t, out, "program (1 attempts)")
	require.Contains(t, out, "Integer(3)")
	require.Contains(t, out, "(nothing to do)")

	require.Len(t, taps, 1)
	require.Equal(t, "alice", taps[0]["username"])
}

func TestChatExhausted(t *testing.T) {
	state, out, _, err := runChat(t, 0, reply("POP"),
		"pop something",
		"/quit",
		"never read",
	)
	require.NoError(t, err)
	require.Nil(t, state.Result)
	var exhausted *synths.ExhaustedError
	require.ErrorAs(t, state.Err, &exhausted)
	require.Contains(t, out, "gave up after 1 attempts")
	require.Contains(t, out, "empty stack")
}

func TestChatOracleError(t *testing.T) {
	boom := errors.New("boom")
	oracle := synths.OracleFunc(func(ctx context.Context, req synths.OracleRequest) (programs.Program, error) {
		return programs.Program{}, boom
	})
	_, _, _, err := runChat(t, 3, oracle, "anything")
	require.ErrorIs(t, err, boom)
}

func TestChatNothingToRetry(t *testing.T) {
	state, out, _, err := runChat(t, 1, reply("PUSH 1"), "/retry", "/write")
	require.NoError(t, err)
	require.Equal(t, 0, state.Turns)
	require.Contains(t, out, "nothing to retry")
	require.Contains(t, out, "no program to write")
}
