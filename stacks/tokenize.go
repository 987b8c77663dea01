package stacks

import (
	"strings"
	"unicode"

	"github.com/sneldao/snel-sub004/values"
)

// tokenize splits a line on whitespace. Double-quoted strings stay whole and a
// '#' outside quotes starts a trailing comment.
func tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	escaped := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		if inQuote {
			current.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inQuote = false
			}
			continue
		}
		switch {
		case r == '"':
			inQuote = true
			current.WriteRune(r)
		case r == '#':
			flush()
			return tokens, nil
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
		}
	}

	if inQuote {
		return nil, &values.ParseError{
			Literal: current.String(),
			Reason:  "unterminated string",
		}
	}
	flush()
	return tokens, nil
}
