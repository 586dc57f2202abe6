// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"errors"
	"fmt"
)

// JSON-RPC error codes used by the hosting framework.
const (
	CodeInvalidRequest = -32600
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error is a fatal structured error surfaced to the tool framework. It
// is the escalation channel for authentication, submission, and
// unexpected failures; conversion-stage problems never become one
// (those ride inline in the returned text instead).
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tool error %d: %s", e.Code, e.Message)
}

// Internalf builds an internal-code Error with a formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternalError, Message: fmt.Sprintf(format, args...)}
}

// AsError normalizes any error into a structured *Error. Structured
// errors pass through unchanged; everything else is wrapped under the
// generic internal code.
func AsError(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return Internalf("Unexpected error in resume tool: %v", err)
}
