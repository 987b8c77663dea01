package stacks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/values"
)

type ErrorKind uint8

const (
	KindEmptyStack ErrorKind = iota + 1
	KindTypeMismatch
	KindValue
	KindUnresolvedVariable
	KindUnknownOperator
	KindEmptyProgram
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyStack:
		return "empty stack"
	case KindTypeMismatch:
		return "type mismatch"
	case KindValue:
		return "invalid value"
	case KindUnresolvedVariable:
		return "unresolved variable"
	case KindUnknownOperator:
		return "unknown operator"
	case KindEmptyProgram:
		return "empty program"
	}
	return fmt.Sprintf("error kind %d", k)
}

type UnresolvedVariableError struct {
	Name string
}

func (u *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("unresolved variable reference %s%s", ops.VariableSigil, u.Name)
}

var ErrEmptyProgram = errors.New("program has no instructions")

// StackError pins a failure to the executable line that caused it.
type StackError struct {
	Index int
	Line  string
	Kind  ErrorKind
	Cause error
	// Stack is the operand stack the failing instruction saw, bottom first.
	Stack []values.Value
}

func (s *StackError) Error() string {
	return fmt.Sprintf("line %d `%s`: %s: %v", s.Index, s.Line, s.Kind, s.Cause)
}

func (s *StackError) Unwrap() error {
	return s.Cause
}

// Diagnostic renders the error for a reader who has the program but not the machine.
func (s *StackError) Diagnostic() string {
	var b strings.Builder
	fmt.Fprintf(&b, "error at instruction %d: %s\n", s.Index, s.Line)
	fmt.Fprintf(&b, "kind: %s\n", s.Kind)
	fmt.Fprintf(&b, "cause: %v\n", s.Cause)
	b.WriteString("stack (bottom to top): ")
	b.WriteString(FormatStack(s.Stack))
	b.WriteByte('\n')
	return b.String()
}

func FormatStack(stack []values.Value) string {
	if len(stack) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(stack))
	for _, v := range stack {
		parts = append(parts, values.Describe(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func classify(err error) ErrorKind {
	var (
		empty      *ops.EmptyStackError
		mismatch   *ops.TypeMismatchError
		unknown    *ops.UnknownOperatorError
		unresolved *UnresolvedVariableError
	)
	switch {
	case errors.As(err, &empty):
		return KindEmptyStack
	case errors.As(err, &mismatch):
		return KindTypeMismatch
	case errors.As(err, &unknown):
		return KindUnknownOperator
	case errors.As(err, &unresolved):
		return KindUnresolvedVariable
	case errors.Is(err, ErrEmptyProgram):
		return KindEmptyProgram
	}
	return KindValue
}
