package programs

import (
	"testing"
)

const sample = `# swap then send half
PUSH 0.001
CONVERT_ETH_TO_WEI

// target
PUSH "AERO"
GET_TOKEN_ADDRESS
EXCHANGE_FUNDS`

func TestParse(t *testing.T) {
	p := Parse(sample)
	if len(p.Lines) != 8 {
		t.Fatalf("got %d", len(p.Lines))
	}
	if p.Len() != 5 {
		t.Fatalf("got %d", p.Len())
	}
	exec := p.Executable()
	if exec[0].Text != "PUSH 0.001" || exec[0].Index != 0 {
		t.Fatalf("got %+v", exec[0])
	}
	if exec[4].Text != "EXCHANGE_FUNDS" || exec[4].Index != 4 {
		t.Fatalf("got %+v", exec[4])
	}
	if p.Lines[0].Executable() || p.Lines[3].Executable() || p.Lines[4].Executable() {
		t.Fatal()
	}
	if p.Source() != sample {
		t.Fatalf("got %q", p.Source())
	}
}

func TestPrinter(t *testing.T) {
	p := FromLines("PUSH 1", "", "# note", "POP")
	expected := "0 | PUSH 1\n  | \n  | # note\n1 | POP\n"
	if got := p.String(); got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestExtract(t *testing.T) {
	reply := "Here you go:\n```snel\nPUSH 1\nPOP\n```\nanything else"
	p := Extract(reply)
	if p.Source() != "PUSH 1\nPOP" {
		t.Fatalf("got %q", p.Source())
	}

	p = Extract("PUSH 1\n")
	if p.Source() != "PUSH 1" {
		t.Fatalf("got %q", p.Source())
	}

	p = Extract("no code")
	if p.Len() != 1 {
		t.Fatalf("got %d", p.Len())
	}
}
