package plans

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

// UserResolver resolves handles through the "users" tables of every config file.
func (Module) UserResolver(
	loader configs.Loader,
	logger logs.Logger,
) UserResolver {
	var tables []map[string]string
	for table := range configs.All[map[string]string](loader, "users") {
		tables = append(tables, table)
	}
	resolver, err := NewStaticResolver(tables...)
	if err != nil {
		panic(err)
	}
	logger.Info("user directory", "users", len(resolver))
	return resolver
}
