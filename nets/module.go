package nets

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
