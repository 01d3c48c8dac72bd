package mnemonic

import (
	"strings"
	"unicode"
)

// tokenize splits an assembly line into its lower-cased operation and its
// operands. Operand text is kept as written.
func tokenize(line string) (string, []string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return strings.ToLower(line), nil
	}
	return strings.ToLower(line[:idx]), SplitOperands(line[idx:])
}

// SplitOperands separates operands on commas and whitespace, except inside
// parentheses so that offset(base) stays a single operand.
func SplitOperands(argsStr string) []string {
	args := []string{}
	var current strings.Builder
	depth := 0

	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, char := range argsStr {
		switch {
		case char == '(':
			depth++
			current.WriteRune(char)
		case char == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(char)
		case depth == 0 && (char == ',' || unicode.IsSpace(char)):
			flush()
		default:
			current.WriteRune(char)
		}
	}
	flush()

	return args
}
