package oraclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is the tagged error value spec.md §4.7 specifies: a numeric OCI
// code, a message, and a stable operation label identifying the call site.
//
// Grounded on the teacher's errors.go Error{SQLState, NativeError, Message}
// struct shape, adapted from ODBC SQLSTATEs to Oracle's single numeric
// error-code model and layered with github.com/pkg/errors wrapping so a
// caller using %+v gets a stack trace to the failing OCI call.
type Error struct {
	Code      int32
	Message   string
	Operation string

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: ORA-%05d: %s", e.Operation, e.Code, e.Message)
}

// Unwrap returns the underlying OCI error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Error kind constructors, one per row of spec.md §7's taxonomy table.
// Each wraps the underlying OCI error with a stack trace via pkg/errors and
// logs at the appropriate level.

func wrapErr(operation string, code int32, message string, cause error) error {
	e := &Error{Code: code, Message: message, Operation: operation, cause: cause}
	logger.Debug().Str("operation", operation).Int32("code", code).Msg(message)
	if cause != nil {
		return errors.WithStack(e)
	}
	return e
}

func errPrepare(cause error) error {
	return wrapErr("prepare", codeOf(cause), cause.Error(), cause)
}

func errBind(cause error) error {
	return wrapErr("bind", codeOf(cause), cause.Error(), cause)
}

func errDefine(cause error) error {
	return wrapErr("define_by_pos", codeOf(cause), cause.Error(), cause)
}

func errExecute(cause error) error {
	return wrapErr("execute", codeOf(cause), cause.Error(), cause)
}

func errFetch(cause error) error {
	return wrapErr("fetch", codeOf(cause), cause.Error(), cause)
}

// errNoRow is raised when fetch_one's iterator returns zero rows
// (spec.md §7's NoRow kind).
func errNoRow() error {
	logger.Debug().Str("operation", "fetch_one").Msg("no row")
	return &Error{Code: 0, Message: "no rows returned", Operation: "fetch_one"}
}

func errInternal(operation, message string) error {
	logger.Debug().Str("operation", operation).Msg(message)
	return &Error{Code: 0, Message: message, Operation: operation}
}

// codeOf extracts the OCI numeric code from an error if it (or something it
// wraps) carries one, for building the higher-level *Error values above.
func codeOf(err error) int32 {
	type coder interface{ OCICode() int32 }
	var c coder
	if errors.As(err, &c) {
		return c.OCICode()
	}
	return 0
}
