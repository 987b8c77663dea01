package prompts

import (
	"fmt"
	"strings"

	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/stacks"
)

func Instruction(content string, username string) string {
	content = strings.TrimSpace(content)
	if username == "" {
		return content
	}
	return fmt.Sprintf("Instruction from @%s: %s", strings.TrimPrefix(username, "@"), content)
}

// Correction tells the oracle what was wrong with its last program.
func Correction(program programs.Program, err *stacks.StackError) string {
	var b strings.Builder
	b.WriteString("The program you wrote does not type-check.\n\n")
	b.WriteString("Program, executable instructions numbered from 0:\n")
	b.WriteString(program.String())
	b.WriteString("\n")
	b.WriteString(err.Diagnostic())
	b.WriteString("\n")
	b.WriteString(hint(err.Kind))
	b.WriteString("\nReply with the whole corrected program in a single fenced code block.\n")
	return b.String()
}

func hint(kind stacks.ErrorKind) string {
	switch kind {
	case stacks.KindEmptyStack:
		return "The operator needs more values on the stack than there are. Push the missing inputs first."
	case stacks.KindTypeMismatch:
		return "An operand has the wrong type. Check the operator's signature and the order of inputs; the last input must be on top."
	case stacks.KindUnresolvedVariable:
		return "A variable is read before it was bound. Bind it with ASSIGN first or spell it the same way."
	case stacks.KindUnknownOperator:
		return "Use only the operators listed in the grammar."
	case stacks.KindEmptyProgram:
		return "The reply contained no instructions."
	}
	return "A literal or value is invalid. Fix the literal syntax or the value."
}
