package synths

import (
	"fmt"

	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/stacks"
)

// ExhaustedError is returned when every allowed candidate failed verification.
type ExhaustedError struct {
	Session  string
	Attempts int
	Program  programs.Program
	Last     *stacks.StackError
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("synthesis failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}
