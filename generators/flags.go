package generators

import "github.com/sneldao/snel-sub004/cmds"

var (
	debugOpenAI     = cmds.Switch("-debug-openai")
	tapOpenAI       = cmds.Switch("-tap-openai")
	temperatureFlag = cmds.Var[float32]("-temperature")
)
