package values

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ParseError struct {
	Literal string
	Reason  string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid literal %s: %s", p.Literal, p.Reason)
}

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	handlePattern  = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// ParseLiteral parses one operand token of an instruction line.
func ParseLiteral(token string) (Value, error) {
	switch {

	case token == "":
		return nil, &ParseError{Literal: `""`, Reason: "empty operand"}

	case strings.HasPrefix(token, `"`):
		str, err := strconv.Unquote(token)
		if err != nil {
			return nil, &ParseError{Literal: token, Reason: "unterminated or malformed string"}
		}
		return String(str), nil

	case token == "true":
		return Boolean(true), nil
	case token == "false":
		return Boolean(false), nil

	case strings.HasPrefix(token, "@"):
		handle := token[1:]
		if !handlePattern.MatchString(handle) {
			return nil, &ParseError{Literal: token, Reason: "malformed user handle"}
		}
		return User(handle), nil

	case strings.HasPrefix(token, "0x"), strings.HasPrefix(token, "0X"):
		if !common.IsHexAddress(token) {
			return nil, &ParseError{Literal: token, Reason: "malformed address, want 0x followed by 40 hex digits"}
		}
		return Address(common.HexToAddress(token)), nil

	case integerPattern.MatchString(token):
		i, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &ParseError{Literal: token, Reason: "integer out of range"}
		}
		return Integer(i), nil

	case strings.ContainsAny(token, ".eE"):
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &ParseError{Literal: token, Reason: "not a number"}
		}
		return Float(f), nil

	}

	return nil, &ParseError{Literal: token, Reason: "not a literal"}
}
