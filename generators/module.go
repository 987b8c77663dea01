package generators

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
