package oracles

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/generators"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/prompts"
	"github.com/sneldao/snel-sub004/snelconfigs"
	"github.com/sneldao/snel-sub004/tokens"
)

type Module struct {
	dscope.Module
	Generators  generators.Module
	Ops         ops.Module
	SnelConfigs snelconfigs.Module
}

type Grammar string

func (Module) Grammar(
	registry *ops.Registry,
	directory tokens.Directory,
) Grammar {
	return Grammar(prompts.Grammar(registry, directory))
}

type NewLLM func(generator generators.Generator) *LLM

func (Module) NewLLM(
	grammar Grammar,
	maxTokens snelconfigs.MaxContextTokens,
	buildGenerate generators.BuildGeneratePhase,
	logger logs.Logger,
) NewLLM {
	return func(generator generators.Generator) *LLM {
		limit := int(maxTokens)
		if n := generator.Args().ContextTokens; n > 0 {
			limit = min(limit, n)
		}
		return &LLM{
			generator:     generator,
			grammar:       string(grammar),
			maxTokens:     limit,
			buildGenerate: buildGenerate,
			logger:        logger,
		}
	}
}

// GetOracle builds an LLM oracle over the default generator.
type GetOracle func() (*LLM, error)

func (Module) GetOracle(
	get generators.GetDefaultGenerator,
	newLLM NewLLM,
) GetOracle {
	return func() (*LLM, error) {
		generator, err := get()
		if err != nil {
			return nil, err
		}
		return newLLM(generator), nil
	}
}
