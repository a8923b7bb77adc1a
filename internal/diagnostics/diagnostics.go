package diagnostics

import (
	"fmt"

	"github.com/gingerlang/ginger/internal/token"
)

type ErrorCode string

// Stable diagnostic codes. The letter names the phase: C catalog load,
// P code parse, T type check, R runtime.
const (
	ErrC001 ErrorCode = "C001" // unrecognized catalog line
	ErrC002 ErrorCode = "C002" // fn block missing args or return
	ErrC003 ErrorCode = "C003" // reference to an unknown type
	ErrC004 ErrorCode = "C004" // duplicate function name
	ErrC005 ErrorCode = "C005" // keyed line outside a fn block

	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unterminated string literal
	ErrP003 ErrorCode = "P003" // illegal character
	ErrP004 ErrorCode = "P004" // argument is not a literal
	ErrP005 ErrorCode = "P005" // trailing input after a call

	ErrT001 ErrorCode = "T001" // unknown function
	ErrT002 ErrorCode = "T002" // arity mismatch
	ErrT003 ErrorCode = "T003" // argument type mismatch

	ErrR001 ErrorCode = "R001" // missing builtin implementation
	ErrR002 ErrorCode = "R002" // runtime failure inside a builtin

	WarnCW01 ErrorCode = "C-W01" // type declared but never referenced
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	Message  string
	File     string
	Line     int
	Column   int
}

func (e *DiagnosticError) Error() string {
	pos := ""
	if e.Line > 0 {
		if e.Column > 0 {
			pos = fmt.Sprintf("%d:%d: ", e.Line, e.Column)
		} else {
			pos = fmt.Sprintf("%d: ", e.Line)
		}
	}
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	return fmt.Sprintf("%s[%s] %s", pos, e.Code, e.Message)
}

func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: SeverityError,
		Message:  msg,
		Line:     tok.Line,
		Column:   tok.Column,
	}
}

func NewWarning(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: SeverityWarning,
		Message:  msg,
		Line:     tok.Line,
		Column:   tok.Column,
	}
}
