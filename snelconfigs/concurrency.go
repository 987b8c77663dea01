package snelconfigs

import (
	"runtime"

	"github.com/sneldao/snel-sub004/cmds"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/vars"
)

// Concurrency bounds how many sessions run at once in batch mode.
type Concurrency int

var concurrencyFlag = cmds.Var[int]("-concurrency")

func (Module) Concurrency(
	loader configs.Loader,
) Concurrency {
	return Concurrency(vars.FirstNonZero(
		*concurrencyFlag,
		configs.First[int](loader, "concurrency"),
		runtime.NumCPU(),
	))
}
