package oracles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sneldao/snel-sub004/generators"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/prompts"
	"github.com/sneldao/snel-sub004/synths"
)

// ErrPromptTooLarge means the conversation no longer fits the model's context window.
var ErrPromptTooLarge = errors.New("prompt too large")

// LLM asks a chat model for programs. The system prompt is the grammar; each rejected
// candidate is replayed as an assistant turn followed by the correction as a user turn.
type LLM struct {
	generator     generators.Generator
	grammar       string
	maxTokens     int
	buildGenerate generators.BuildGeneratePhase
	logger        logs.Logger
	output        io.Writer
}

var _ synths.Oracle = new(LLM)

// WithOutput streams generated text to w while it arrives.
func (l *LLM) WithOutput(w io.Writer) *LLM {
	ret := *l
	ret.output = w
	return &ret
}

func (l *LLM) Model() string {
	return l.generator.Args().Model
}

func (l *LLM) Generate(ctx context.Context, req synths.OracleRequest) (programs.Program, error) {
	contents := []*generators.Content{
		userContent(prompts.Instruction(req.Request.Content, req.Request.Username)),
	}
	for _, feedback := range req.Feedback {
		contents = append(contents,
			&generators.Content{
				Role: generators.RoleAssistant,
				Parts: []generators.Part{
					generators.Text("```\n" + feedback.Program.Source() + "\n```"),
				},
			},
			userContent(feedback.Message),
		)
	}

	var state generators.State = generators.NewPrompts(l.grammar, contents)
	if err := l.checkBudget(state); err != nil {
		return programs.Program{}, err
	}
	if l.output != nil {
		state = generators.NewOutput(state, l.output, false)
	}

	for phase := l.buildGenerate(l.generator, nil); phase != nil; {
		var err error
		phase, state, err = phase(ctx, state)
		if err != nil {
			return programs.Program{}, err
		}
	}

	reply := generators.LastText(state, generators.RoleAssistant)
	l.logger.DebugContext(ctx, "oracle reply",
		"session", req.Session,
		"attempt", req.Attempt,
		"reply", reply,
	)
	return programs.Extract(reply), nil
}

func (l *LLM) checkBudget(state generators.State) error {
	if l.maxTokens <= 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(state.SystemPrompt())
	for _, content := range state.Contents() {
		b.WriteString(content.Text())
	}
	n, err := l.generator.CountTokens(b.String())
	if err != nil {
		return err
	}
	if n > l.maxTokens {
		return fmt.Errorf("%w: %d tokens, limit %d", ErrPromptTooLarge, n, l.maxTokens)
	}
	return nil
}

func userContent(text string) *generators.Content {
	return &generators.Content{
		Role:  generators.RoleUser,
		Parts: []generators.Part{generators.Text(text)},
	}
}
