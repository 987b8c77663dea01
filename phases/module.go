package phases

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/plans"
	"github.com/sneldao/snel-sub004/synths"
)

type Module struct {
	dscope.Module
	Debugs debugs.Module
	Logs   logs.Module
	Plans  plans.Module
	Synths synths.Module
}
