package programs

import (
	"strings"
)

type Line struct {
	Text string
	// Index counts executable lines from 0. It is -1 for blank and comment lines.
	Index int
}

func (l Line) Executable() bool {
	return l.Index >= 0
}

// Program is an ordered list of instruction lines. Non-executable lines are kept for display.
type Program struct {
	Lines []Line
}

func Parse(text string) Program {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return FromLines(strings.Split(text, "\n")...)
}

func FromLines(lines ...string) Program {
	var ret Program
	index := 0
	for _, text := range lines {
		line := Line{
			Text:  text,
			Index: -1,
		}
		if !IsBlankOrComment(text) {
			line.Index = index
			index++
		}
		ret.Lines = append(ret.Lines, line)
	}
	return ret
}

func IsBlankOrComment(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "//")
}

func (p Program) Executable() []Line {
	var ret []Line
	for _, line := range p.Lines {
		if line.Executable() {
			ret = append(ret, line)
		}
	}
	return ret
}

func (p Program) Len() int {
	n := 0
	for _, line := range p.Lines {
		if line.Executable() {
			n++
		}
	}
	return n
}

// Source returns the program text as written.
func (p Program) Source() string {
	var b strings.Builder
	for i, line := range p.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Text)
	}
	return b.String()
}
