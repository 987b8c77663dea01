package logs

import (
	"io"
	"os"

	"github.com/sneldao/snel-sub004/cmds"
)

type Writer io.Writer

var logFileFlag = cmds.Var[string]("-log-file")

// Writer is stderr, or the file named by -log-file so batch output on stdout stays clean
// and session logs survive the run. The file is appended to.
func (Module) Writer() Writer {
	if *logFileFlag == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	return f
}
