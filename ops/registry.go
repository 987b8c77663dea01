package ops

import (
	"fmt"
	"iter"
	"strings"
)

// Registry is an ordered, read-only mapping from name to operator.
type Registry struct {
	ordered []*Operator
	byName  map[string]*Operator
}

func NewRegistry(sets ...[]*Operator) (*Registry, error) {
	ret := &Registry{
		byName: make(map[string]*Operator),
	}
	for _, set := range sets {
		for _, op := range set {
			if _, ok := ret.byName[op.Name]; ok {
				return nil, fmt.Errorf("duplicated operator %s", op.Name)
			}
			ret.byName[op.Name] = op
			ret.ordered = append(ret.ordered, op)
		}
	}
	return ret, nil
}

func (r *Registry) Lookup(name string) (*Operator, error) {
	op, ok := r.byName[strings.ToUpper(name)]
	if !ok {
		return nil, &UnknownOperatorError{
			Name: name,
		}
	}
	return op, nil
}

func (r *Registry) All() iter.Seq[*Operator] {
	return func(yield func(*Operator) bool) {
		for _, op := range r.ordered {
			if !yield(op) {
				return
			}
		}
	}
}

func (r *Registry) Len() int {
	return len(r.ordered)
}
