package stacks

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/ops"
)

type Module struct {
	dscope.Module
	Ops ops.Module
}

type NewMachine func() *Machine

func (Module) NewMachine(
	registry *ops.Registry,
) NewMachine {
	return func() *Machine {
		return New(registry)
	}
}
