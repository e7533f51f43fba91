package stomp

import (
	"errors"
	"fmt"
)

// FormatError reports a value that does not parse as the number its header
// or negotiation field requires. It is the only error kind this package
// produces; unknown commands and versions are never errors.
type FormatError struct {
	Field string // header name or negotiation field the value arrived under
	Value string // the raw value that failed to parse
	cause error
}

func (e *FormatError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("stomp: malformed %s value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("stomp: malformed %s value %q: %v", e.Field, e.Value, e.cause)
}

// Unwrap exposes the underlying parse error, if any.
func (e *FormatError) Unwrap() error { return e.cause }

func newFormatError(field, value string, cause error) *FormatError {
	return &FormatError{Field: field, Value: value, cause: cause}
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
