package prompts

import (
	"fmt"
	"strings"

	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/tokens"
	"github.com/sneldao/snel-sub004/values"
)

const grammarHead = `You translate a user's financial instruction into a program for a typed stack machine.

# Program format
- One instruction per line: an operator name followed by optional literal operands.
- Literal operands are pushed left to right before the operator runs.
- The operator then pops its inputs. The last listed input is on top of the stack.
- Lines starting with # or // are comments.
- Reply with the program only, inside a single fenced code block.

# Literals
- Integer: 5, -12
- Float: 0.5, 0.001 (a Float needs a decimal point; 1 is an Integer, 1.0 is a Float)
- String: "AERO"
- Boolean: true, false
- Address: 0x followed by 40 hex digits
- User: @handle
- Variable read: &name pushes the value bound by ASSIGN

Integers and Floats never convert into each other. Arithmetic needs two operands of the same kind.
`

// Grammar describes every registered operator. It is derived from the registry so the
// two cannot disagree.
func Grammar(registry *ops.Registry, directory tokens.Directory) string {
	var b strings.Builder
	b.WriteString(grammarHead)

	b.WriteString("\n# Operators\n")
	for op := range registry.All() {
		b.WriteString("- ")
		b.WriteString(Signature(op))
		b.WriteString("\n  ")
		b.WriteString(op.Doc)
		b.WriteString("\n")
	}

	if symbols := directory.Symbols(); len(symbols) > 0 {
		b.WriteString("\n# Known token symbols\n")
		b.WriteString(strings.Join(symbols, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n# Examples\n")
	for _, example := range Examples {
		fmt.Fprintf(&b, "\nInstruction: %s\n```\n%s\n```\n", example.Instruction, example.Program)
	}

	return b.String()
}

// Signature renders an operator as NAME(input: Kind, ...) -> Kind.
func Signature(op *ops.Operator) string {
	var b strings.Builder
	b.WriteString(op.Name)
	b.WriteString("(")
	for i, input := range op.Inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(input.Name)
		b.WriteString(": ")
		b.WriteString(input.Accepts.String())
	}
	b.WriteString(")")
	if len(op.Outputs) > 0 {
		b.WriteString(" -> ")
		b.WriteString(values.Constraint(op.Outputs).String())
	}
	return b.String()
}
