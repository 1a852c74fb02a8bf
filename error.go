package bindhtml

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
)

// Error is a parse.Error that also keeps the offset into the input at which it occurred.
type Error struct {
	Offset int

	err *parse.Error
}

// NewError creates a new error for the given offset into src.
func NewError(msg string, src []byte, offset int) *Error {
	return &Error{
		Offset: offset,
		err:    parse.NewError(bytes.NewReader(src), offset, msg),
	}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred, with a caret pointing at the column.
func (e *Error) Position() (int, int, string) {
	return e.err.Position()
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying parse.Error.
func (e *Error) Unwrap() error {
	return e.err
}
