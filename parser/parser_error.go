package parser

import (
	"casm/types"
	"fmt"
)

// ParseError reports a line that could not be classified into a well-formed statement
type ParseError struct {
	Code   types.ErrorCode
	Column int // 1-based, 0 when not tied to a token
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
	}
	return e.Msg
}

func syntaxErrorf(col int, format string, args ...interface{}) *ParseError {
	return &ParseError{Code: types.E_SYNTAX, Column: col, Msg: fmt.Sprintf(format, args...)}
}
