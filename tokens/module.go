package tokens

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Directory(
	loader configs.Loader,
	logger logs.Logger,
) Directory {
	tables := []map[string]string{Builtin}
	for table := range configs.All[map[string]string](loader, "tokens") {
		tables = append(tables, table)
	}
	dir, err := NewDirectory(tables...)
	if err != nil {
		panic(err)
	}
	logger.Info("token directory", "symbols", len(dir.Symbols()))
	return dir
}
