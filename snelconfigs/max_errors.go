package snelconfigs

import (
	"github.com/sneldao/snel-sub004/cmds"
	"github.com/sneldao/snel-sub004/configs"
)

// MaxErrors is how many failed candidates the repair loop tolerates before giving up.
type MaxErrors int

const DefaultMaxErrors = 3

var maxErrorsFlag = cmds.Var[*int]("-max-errors")

func (Module) MaxErrors(
	loader configs.Loader,
) MaxErrors {
	if *maxErrorsFlag != nil {
		return MaxErrors(max(**maxErrorsFlag, 0))
	}
	var n int
	if err := loader.AssignFirst("max_errors", &n); err == nil {
		return MaxErrors(n)
	}
	return DefaultMaxErrors
}
