// Package cerr defines the error shape shared by the stages that have no
// richer per-kind taxonomy of their own: arena and lexer. Parser and sema
// keep their own bespoke error types but follow the same emoji-prefixed,
// offset-carrying Error() convention. Every stage reports at most one error
// and stops; there is no recovery past the first failure.
package cerr

import "fmt"

// NoOffset marks an error that has no single byte position to point at,
// such as an arena capacity failure.
const NoOffset = -1

// Error is the result of a failed compiler stage.
type Error struct {
	Stage   string
	Offset  int
	Message string
}

func New(stage string, offset int, format string, args ...any) *Error {
	return &Error{Stage: stage, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Offset == NoOffset {
		return fmt.Sprintf("💥 %s error: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("💥 %s error (offset %d): %s", e.Stage, e.Offset, e.Message)
}
