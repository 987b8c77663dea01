package stacks

import (
	"slices"
	"strings"

	farm "github.com/dgryski/go-farm"
	"github.com/shamaton/msgpack/v2"
	"github.com/sneldao/snel-sub004/values"
)

type Binding struct {
	Name  string        `msgpack:"name"`
	Value values.Record `msgpack:"value"`
}

// Snapshot is a canonical, encodable view of the machine state.
type Snapshot struct {
	Stack     []values.Record `msgpack:"stack"`
	Variables []Binding       `msgpack:"variables"`
	Effects   int             `msgpack:"effects"`
	Skip      int             `msgpack:"skip"`
}

func (m *Machine) Snapshot() Snapshot {
	ret := Snapshot{
		Stack:   values.ToRecords(m.stack),
		Effects: len(m.effects),
		Skip:    m.skip,
	}
	for name, value := range m.vars {
		ret.Variables = append(ret.Variables, Binding{
			Name:  name,
			Value: values.ToRecord(value),
		})
	}
	slices.SortFunc(ret.Variables, func(a, b Binding) int {
		return strings.Compare(a.Name, b.Name)
	})
	return ret
}

func (s Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

func (m *Machine) Fingerprint() (uint64, error) {
	bs, err := m.Snapshot().Encode()
	if err != nil {
		return 0, err
	}
	return farm.Fingerprint64(bs), nil
}
