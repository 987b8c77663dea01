package snelconfigs

import (
	"math"

	"github.com/sneldao/snel-sub004/cmds"
	"github.com/sneldao/snel-sub004/configs"
)

// MaxContextTokens caps the prompt size sent to the oracle, on top of the model's own window.
type MaxContextTokens int

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxContextTokens(
	loader configs.Loader,
) MaxContextTokens {
	n := math.MaxInt
	if *maxTokensFlag > 0 {
		n = min(n, *maxTokensFlag)
	}
	if v := configs.First[int](loader, "max_context_tokens"); v > 0 {
		n = min(n, v)
	}
	return MaxContextTokens(n)
}
