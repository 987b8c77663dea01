package synths

import (
	"context"

	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/stacks"
	"github.com/sneldao/snel-sub004/values"
)

// Request is one natural-language instruction from one user.
type Request struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Oracle writes candidate programs. It sees the instruction and every correction made so far
// in the session, oldest first.
type Oracle interface {
	Generate(ctx context.Context, req OracleRequest) (programs.Program, error)
}

type OracleFunc func(ctx context.Context, req OracleRequest) (programs.Program, error)

func (o OracleFunc) Generate(ctx context.Context, req OracleRequest) (programs.Program, error) {
	return o(ctx, req)
}

type OracleRequest struct {
	Session  string
	Attempt  int
	Request  Request
	Feedback []Feedback
}

// Feedback is a rejected candidate and the message explaining the rejection.
type Feedback struct {
	Program programs.Program
	Error   *stacks.StackError
	Message string
}

type Result struct {
	Session   string
	Program   programs.Program
	Stack     []values.Value
	Variables map[string]values.Value
	Effects   []ops.Effect
	Attempts  int
	Feedback  []Feedback
	// Fingerprint hashes the final stack and variables. Equal programs give equal fingerprints.
	Fingerprint uint64
}
