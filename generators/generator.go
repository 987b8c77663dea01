package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/sneldao/snel-sub004/vars"
)

type Generator interface {
	Args() GeneratorArgs
	CountTokens(string) (int, error)
	Generate(ctx context.Context, state State) (State, error)
}

type GetGenerator func(name string) (Generator, error)

// GetGenerator resolves user-defined generators first, then provider prefixes such as
// "ollama:qwen2.5-coder", then the built-in names.
func (Module) GetGenerator(
	getSpecs GetGeneratorSpecs,
	newOpenAI NewOpenAI,
	openAIKey OpenAIAPIKey,
	newOpenRouter NewOpenRouter,
	newDeepseek NewDeepseek,
	newOllama NewOllama,
) GetGenerator {
	return func(name string) (Generator, error) {

		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch strings.ToLower(spec.Type) {
			case "openai", "open-ai", "open_ai":
				spec.BaseURL = vars.FirstNonZero(spec.BaseURL, openAIBaseURL)
				return newOpenAI(spec.GeneratorArgs, vars.FirstNonZero(spec.APIKey, string(openAIKey))), nil
			case "openrouter", "open-router", "open_router":
				return newOpenRouter(spec.GeneratorArgs), nil
			case "deepseek":
				return newDeepseek(spec.GeneratorArgs), nil
			case "ollama":
				return newOllama(spec.GeneratorArgs), nil
			default:
				return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
			}
		}

		if provider, model, ok := strings.Cut(name, ":"); ok {
			args := GeneratorArgs{
				Model:         model,
				ContextTokens: 32 * K,
			}
			switch provider {
			case "ollama":
				return newOllama(args), nil
			case "openrouter":
				args.ContextTokens = 128 * K
				return newOpenRouter(args), nil
			}
		}

		switch name {

		case "gpt-4o-mini", "gpt-4o", "gpt-4.1-mini", "gpt-4.1":
			return newOpenAI(GeneratorArgs{
				BaseURL:           openAIBaseURL,
				Model:             name,
				ContextTokens:     128 * K,
				MaxGenerateTokens: vars.PtrTo(4 * K),
				Temperature:       vars.PtrTo(float32(0.1)),
			}, string(openAIKey)), nil

		case "deepseek", "deepseek-chat":
			return newDeepseek(GeneratorArgs{
				Model:             "deepseek-chat",
				ContextTokens:     64 * K,
				MaxGenerateTokens: vars.PtrTo(4 * K),
				Temperature:       vars.PtrTo(float32(0.1)),
			}), nil

		}

		return nil, fmt.Errorf("invalid model: %s", name)
	}
}
