package parser

import "fmt"

// SyntaxError is returned for any parse failure: unexpected token, missing
// terminator, or malformed declaration/expression.
type SyntaxError struct {
	Offset  int
	Message string
}

func syntaxErrorf(offset int, format string, args ...any) SyntaxError {
	return SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 Syntax error (offset %d): %s", e.Offset, e.Message)
}
