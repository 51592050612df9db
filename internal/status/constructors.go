package status

// InvalidParameter is returned for nil or empty input, malformed options and
// missing operands.
func InvalidParameter(format string, args ...any) *Error {
	return newf(KindInvalidParameter, format, args...)
}

// NotFound is returned when nothing matches or a resource cannot be opened.
func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

// InvalidPattern is returned when a pattern cannot be compiled.
func InvalidPattern(pattern string, err error) *Error {
	return &Error{
		Kind:    KindInvalidPattern,
		Message: "invalid pattern '" + pattern + "'",
		Err:     err,
	}
}

// IOError wraps a handler's own I/O failure.
func IOError(err error, format string, args ...any) *Error {
	e := newf(KindIOError, format, args...)
	e.Err = err
	return e
}

// NotInitialized is returned when dispatch is attempted before setup or after
// cleanup.
func NotInitialized(what string) *Error {
	return newf(KindNotInitialized, "%s is not initialized", what)
}

// Failure is a generic non-success result, for handlers that only report a
// numeric exit status.
func Failure(format string, args ...any) *Error {
	return newf(KindFailure, format, args...)
}

// UnknownCommand is returned when no route matches the input.
func UnknownCommand(input string, suggestions ...string) *Error {
	msg := "Unknown command: " + input
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean"
		if len(suggestions) == 1 {
			msg += " this?\n"
		} else {
			msg += " one of these?\n"
		}
		for _, s := range suggestions {
			msg += "    " + s + "\n"
		}
		msg = msg[:len(msg)-1]
	}
	return &Error{Kind: KindNotFound, Message: msg}
}

// MissingOperand is returned when a global option requires a value.
func MissingOperand(option, what string) *Error {
	return newf(KindInvalidParameter, "%s requires %s", option, what)
}
