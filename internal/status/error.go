package status

import (
	"errors"
	"fmt"
)

// Kind represents the category of a failure.
type Kind int

const (
	KindFailure Kind = iota
	KindInvalidParameter
	KindNotFound
	KindOutOfMemory
	KindInvalidPattern
	KindIOError
	KindNotInitialized
)

// Exit codes:
//
//	Exit 0: success
//	Exit 1: every failure kind
//
// The table is kept per kind so a kind can be given its own code without
// touching callers.
var exitCodes = map[Kind]int{
	KindFailure:          1,
	KindInvalidParameter: 1,
	KindNotFound:         1,
	KindOutOfMemory:      1,
	KindInvalidPattern:   1,
	KindIOError:          1,
	KindNotInitialized:   1,
}

// String returns the human-readable text for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "Invalid parameter"
	case KindNotFound:
		return "Not found"
	case KindOutOfMemory:
		return "Out of memory"
	case KindInvalidPattern:
		return "Invalid pattern"
	case KindIOError:
		return "I/O error"
	case KindNotInitialized:
		return "Not initialized"
	default:
		return "Failure"
	}
}

// Error is a failure with semantic type information.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same kind.
// This lets callers write errors.Is(err, status.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Sentinel values for errors.Is comparisons.
var (
	ErrFailure          = &Error{Kind: KindFailure}
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrOutOfMemory      = &Error{Kind: KindOutOfMemory}
	ErrInvalidPattern   = &Error{Kind: KindInvalidPattern}
	ErrIOError          = &Error{Kind: KindIOError}
	ErrNotInitialized   = &Error{Kind: KindNotInitialized}
)

// KindOf returns the kind of err. Errors that carry no kind are failures.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindFailure
}

// ExitCode maps err to a process exit code; nil is success.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *Error
	if errors.As(err, &se) {
		return se.ExitCode()
	}
	return 1
}

// Text returns the human-readable status text for err.
func Text(err error) string {
	if err == nil {
		return "Success"
	}
	return KindOf(err).String()
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
