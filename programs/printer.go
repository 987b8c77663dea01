package programs

import (
	"fmt"
	"strconv"
	"strings"
)

// String numbers executable lines only; blank and comment lines get an empty gutter.
func (p Program) String() string {
	width := len(strconv.Itoa(max(p.Len()-1, 0)))
	var b strings.Builder
	for _, line := range p.Lines {
		if line.Executable() {
			fmt.Fprintf(&b, "%*d | %s\n", width, line.Index, strings.TrimSpace(line.Text))
		} else {
			fmt.Fprintf(&b, "%*s | %s\n", width, "", strings.TrimSpace(line.Text))
		}
	}
	return b.String()
}
