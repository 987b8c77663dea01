package ops

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/tokens"
)

type Module struct {
	dscope.Module
	Tokens tokens.Module
}

func (Module) Registry(
	directory tokens.Directory,
) *Registry {
	registry, err := NewRegistry(
		Base(),
		Domain(directory),
	)
	if err != nil {
		panic(err)
	}
	return registry
}
