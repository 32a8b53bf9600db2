// Package errs defines the typed error taxonomy shared by every numeric
// backend and the evaluator: MathError, UnitError, ArgumentMismatch,
// UnknownVariable, UnknownFunction, NotSupported and InvalidLiteral.
package errs

import "fmt"

// Kind identifies which branch of the engine's error taxonomy an Error
// belongs to, so callers can switch on it instead of parsing messages.
type Kind int

const (
	Math Kind = iota
	Unit
	ArgumentMismatch
	UnknownVariable
	UnknownFunction
	NotSupported
	InvalidLiteral
)

func (k Kind) String() string {
	switch k {
	case Math:
		return "MathError"
	case Unit:
		return "UnitError"
	case ArgumentMismatch:
		return "ArgumentMismatch"
	case UnknownVariable:
		return "UnknownVariable"
	case UnknownFunction:
		return "UnknownFunction"
	case NotSupported:
		return "NotSupported"
	case InvalidLiteral:
		return "InvalidLiteral"
	default:
		return "Error"
	}
}

// Error is the concrete error type returned by every fallible operation in
// the engine. It is never recovered internally; the caller decides.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func MathError(format string, args ...any) *Error {
	return New(Math, format, args...)
}

func UnitError(format string, args ...any) *Error {
	return New(Unit, format, args...)
}

func ArgumentMismatchError(format string, args ...any) *Error {
	return New(ArgumentMismatch, format, args...)
}

func UnknownVariableError(name string) *Error {
	return New(UnknownVariable, "unknown variable %q", name)
}

func UnknownFunctionError(name string) *Error {
	return New(UnknownFunction, "unknown function %q", name)
}

func NotSupportedError(format string, args ...any) *Error {
	return New(NotSupported, format, args...)
}

func InvalidLiteralError(format string, args ...any) *Error {
	return New(InvalidLiteral, format, args...)
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
