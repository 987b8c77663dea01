package prompts

import (
	"errors"
	"strings"
	"testing"

	"github.com/sneldao/snel-sub004/ops"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/stacks"
	"github.com/sneldao/snel-sub004/tokens"
)

func testRegistry(t *testing.T) (*ops.Registry, tokens.Directory) {
	dir, err := tokens.NewDirectory(tokens.Builtin)
	if err != nil {
		t.Fatal(err)
	}
	registry, err := ops.NewRegistry(ops.Base(), ops.Domain(dir))
	if err != nil {
		t.Fatal(err)
	}
	return registry, dir
}

func TestGrammarCoversRegistry(t *testing.T) {
	registry, dir := testRegistry(t)
	grammar := Grammar(registry, dir)
	for op := range registry.All() {
		if !strings.Contains(grammar, Signature(op)) {
			t.Fatalf("missing %s", op.Name)
		}
	}
	if !strings.Contains(grammar, "AERO") {
		t.Fatal("missing token symbols")
	}
}

func TestSignature(t *testing.T) {
	registry, _ := testRegistry(t)
	op, err := registry.Lookup(ops.OpTransferFunds)
	if err != nil {
		t.Fatal(err)
	}
	if got := Signature(op); got != "TRANSFER_FUNDS(amount: TokenAmount, recipient: Address | User) -> TokenAmount" {
		t.Fatalf("got %s", got)
	}
}

func TestExamplesSimulate(t *testing.T) {
	registry, _ := testRegistry(t)
	for _, example := range Examples {
		m := stacks.New(registry)
		if err := m.Run(programs.Parse(example.Program)); err != nil {
			t.Fatalf("%s: %v", example.Instruction, err)
		}
		if m.Depth() != 0 && !strings.HasPrefix(example.Instruction, "if") {
			t.Fatalf("%s: leftover %v", example.Instruction, m.Stack())
		}
	}
}

func TestCorrection(t *testing.T) {
	registry, _ := testRegistry(t)
	program := programs.FromLines("PUSH 5", `PUSH "x"`, "ADD")
	err := stacks.New(registry).Run(program)
	var stackErr *stacks.StackError
	if !errors.As(err, &stackErr) {
		t.Fatalf("got %v", err)
	}
	msg := Correction(program, stackErr)
	for _, want := range []string{
		"2 | ADD",
		"error at instruction 2",
		"type mismatch",
		`String("x")`,
		"wrong type",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in %s", want, msg)
		}
	}
}

func TestInstruction(t *testing.T) {
	if got := Instruction(" swap ", "@bob"); got != "Instruction from @bob: swap" {
		t.Fatalf("got %q", got)
	}
	if got := Instruction("swap", ""); got != "swap" {
		t.Fatalf("got %q", got)
	}
}
