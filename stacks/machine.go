package stacks

import (
	"maps"
	"slices"
	"strings"

	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/values"
)

// Machine runs programs over a typed operand stack.
// It only records effects; nothing leaves the machine.
type Machine struct {
	registry *ops.Registry
	stack    []values.Value
	vars     map[string]values.Value
	effects  []ops.Effect
	skip     int
}

func New(registry *ops.Registry) *Machine {
	return &Machine{
		registry: registry,
		vars:     make(map[string]values.Value),
	}
}

// Push seeds the stack before a run.
func (m *Machine) Push(vs ...values.Value) {
	m.stack = append(m.stack, vs...)
}

func (m *Machine) Stack() []values.Value {
	return slices.Clone(m.stack)
}

func (m *Machine) Depth() int {
	return len(m.stack)
}

func (m *Machine) Variable(name string) (values.Value, bool) {
	v, ok := m.vars[name]
	return v, ok
}

func (m *Machine) Effects() []ops.Effect {
	return slices.Clone(m.effects)
}

// Run executes every executable line in order and stops at the first failure.
// Skips left over by a BRANCH never outlive the run.
func (m *Machine) Run(program programs.Program) error {
	m.skip = 0
	defer func() {
		m.skip = 0
	}()
	lines := program.Executable()
	if len(lines) == 0 {
		return &StackError{
			Index: 0,
			Kind:  KindEmptyProgram,
			Cause: ErrEmptyProgram,
			Stack: m.Stack(),
		}
	}
	for _, line := range lines {
		if m.skip > 0 {
			m.skip--
			continue
		}
		if err := m.Exec(line.Index, line.Text); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes one instruction line. On failure the machine keeps its state from before the line.
func (m *Machine) Exec(index int, text string) error {
	text = strings.TrimSpace(text)
	fail := func(cause error, stack []values.Value) error {
		return &StackError{
			Index: index,
			Line:  text,
			Kind:  classify(cause),
			Cause: cause,
			Stack: slices.Clone(stack),
		}
	}

	tokens, err := tokenize(text)
	if err != nil {
		return fail(err, m.stack)
	}
	if len(tokens) == 0 {
		return nil
	}

	op, err := m.registry.Lookup(tokens[0])
	if err != nil {
		return fail(err, m.stack)
	}

	// literals
	work := slices.Clone(m.stack)
	for _, token := range tokens[1:] {
		value, err := m.literal(token)
		if err != nil {
			return fail(err, work)
		}
		work = append(work, value)
	}
	if op.NeedsLiteral && len(tokens) == 1 {
		return fail(&ops.ValueError{
			Operator: op.Name,
			Reason:   "missing literal operand",
		}, work)
	}

	// operands, rightmost declared input on top
	arity := op.Arity()
	if len(work) < arity {
		return fail(&ops.EmptyStackError{
			Operator: op.Name,
			Want:     arity,
			Have:     len(work),
		}, work)
	}
	seen := slices.Clone(work)
	operands := slices.Clone(work[len(work)-arity:])
	work = work[:len(work)-arity]

	f := &frame{}
	results, err := op.Call(f, operands)
	if err != nil {
		return fail(err, seen)
	}
	work = append(work, results...)

	// commit
	m.stack = work
	for _, b := range f.binds {
		m.vars[b.name] = b.value
	}
	m.effects = append(m.effects, f.effects...)
	m.skip += f.skip
	return nil
}

func (m *Machine) literal(token string) (values.Value, error) {
	if name, ok := strings.CutPrefix(token, ops.VariableSigil); ok {
		value, ok := m.vars[name]
		if !ok {
			return nil, &UnresolvedVariableError{
				Name: name,
			}
		}
		return value, nil
	}
	return values.ParseLiteral(token)
}

// Variables returns a copy of the variable table.
func (m *Machine) Variables() map[string]values.Value {
	return maps.Clone(m.vars)
}

type binding struct {
	name  string
	value values.Value
}

// frame collects an instruction's control effects until the instruction succeeds.
type frame struct {
	binds   []binding
	effects []ops.Effect
	skip    int
}

var _ ops.Env = new(frame)

func (f *frame) Bind(name string, value values.Value) {
	f.binds = append(f.binds, binding{name, value})
}

func (f *frame) Skip(lines int) {
	f.skip += lines
}

func (f *frame) Record(effect ops.Effect) {
	f.effects = append(f.effects, effect)
}
