package phases

import (
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/sneldao/snel-sub004/logs"
)

type OpenLiner func() (line *liner.State, closeLiner func())

// OpenLiner opens a terminal line editor with the chat history loaded.
// closeLiner saves the history and restores the terminal.
func (Module) OpenLiner(
	logger logs.Logger,
) OpenLiner {
	return func() (*liner.State, func()) {
		line := liner.NewLiner()
		line.SetCtrlCAborts(true)
		line.SetMultiLineMode(true)

		historyPath := ""
		if dir, err := os.UserConfigDir(); err != nil {
			logger.Warn("get history path error", "err", err)
		} else {
			historyPath = filepath.Join(dir, "snel", "chat-history")
			if f, err := os.Open(historyPath); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}

		return line, func() {
			defer line.Close()
			if historyPath == "" {
				return
			}
			if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
				logger.Warn("create history dir error", "err", err)
				return
			}
			f, err := os.Create(historyPath)
			if err != nil {
				logger.Warn("create history file error", "err", err)
				return
			}
			line.WriteHistory(f)
			f.Close()
		}
	}
}
