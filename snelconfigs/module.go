package snelconfigs

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
