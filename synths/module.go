package synths

import (
	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/snelconfigs"
	"github.com/sneldao/snel-sub004/stacks"
)

type Module struct {
	dscope.Module
	Stacks      stacks.Module
	Logs        logs.Module
	SnelConfigs snelconfigs.Module
}

type NewSynthesizer func(oracle Oracle) *Synthesizer

func (Module) NewSynthesizer(
	newMachine stacks.NewMachine,
	maxErrors snelconfigs.MaxErrors,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewSynthesizer {
	return func(oracle Oracle) *Synthesizer {
		return &Synthesizer{
			oracle:     oracle,
			newMachine: newMachine,
			maxErrors:  int(maxErrors),
			logger:     logger,
			newSpan:    newSpan,
		}
	}
}
