package ops

import "regexp"

// VariableSigil prefixes an operand that reads a bound variable.
const VariableSigil = "&"

var variableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func IsVariableName(name string) bool {
	return variableNamePattern.MatchString(name)
}
