package generators

import (
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/vars"
)

const openAIBaseURL = "https://api.openai.com/v1"

type NewOpenRouter func(args GeneratorArgs) *OpenAI

func (Module) NewOpenRouter(
	newOpenAI NewOpenAI,
	apiKey OpenRouterAPIKey,
	loader configs.Loader,
) NewOpenRouter {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = vars.FirstNonZero(
			args.BaseURL,
			configs.First[string](loader, "openrouter_endpoint"),
			"https://openrouter.ai/api/v1",
		)
		args.IsOpenRouter = true
		return newOpenAI(args, vars.FirstNonZero(args.APIKey, string(apiKey)))
	}
}

type NewDeepseek func(args GeneratorArgs) *OpenAI

func (Module) NewDeepseek(
	apiKey DeepseekAPIKey,
	newOpenAI NewOpenAI,
) NewDeepseek {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = vars.FirstNonZero(args.BaseURL, "https://api.deepseek.com")
		return newOpenAI(args, vars.FirstNonZero(args.APIKey, string(apiKey)))
	}
}

type NewOllama func(args GeneratorArgs) *OpenAI

func (Module) NewOllama(
	newOpenAI NewOpenAI,
) NewOllama {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = vars.FirstNonZero(args.BaseURL, "http://127.0.0.1:11434/v1")
		return newOpenAI(args, args.APIKey)
	}
}
