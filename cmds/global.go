package cmds

import (
	"io"
)

// GlobalExecutor collects the commands packages define at init time.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func PrintUsage(w io.Writer) {
	GlobalExecutor.PrintUsage(w)
}
