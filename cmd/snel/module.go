package main

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/oracles"
	"github.com/sneldao/snel-sub004/phases"
)

type Module struct {
	dscope.Module
	Phases  phases.Module
	Oracles oracles.Module
	Debugs  debugs.Module
}
