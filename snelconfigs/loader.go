package snelconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/sneldao/snel-sub004/cmds"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/logs"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config")

var filenames = []string{
	"snel.cue",
	".snel.cue",
}

// ConfigsLoader looks in the working directory, then the user config dir, then /etc.
// Files named with -config come before all of them.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	paths = append(paths, Discover(dirs...)...)

	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}

func Discover(dirs ...string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
