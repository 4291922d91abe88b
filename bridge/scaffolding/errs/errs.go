// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/jrazmi/dashboard/sdk/validation"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value  int
	name   string
	status int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return ec.name
}

// HTTPStatus returns the status the code maps onto.
func (ec ErrCode) HTTPStatus() int {
	return ec.status
}

// Error codes handed out by the bridges.
var (
	OK                    = ErrCode{value: 0, name: "ok", status: http.StatusOK}
	InvalidArgument       = ErrCode{value: 3, name: "invalid_argument", status: http.StatusBadRequest}
	NotFound              = ErrCode{value: 5, name: "not_found", status: http.StatusNotFound}
	FailedPrecondition    = ErrCode{value: 9, name: "failed_precondition", status: http.StatusInternalServerError}
	Internal              = ErrCode{value: 13, name: "internal", status: http.StatusInternalServerError}
	InternalOnlyLog       = ErrCode{value: 14, name: "internal_only_log", status: http.StatusInternalServerError}
	IntegrationFailure    = ErrCode{value: 17, name: "integration_failure", status: http.StatusInternalServerError}
	InvalidResponseFormat = ErrCode{value: 18, name: "invalid_response_format", status: http.StatusInternalServerError}
)

// Error represents an error in the system.
type Error struct {
	Code     ErrCode                 `json:"-"`
	Message  string                  `json:"error"`
	Detail   string                  `json:"message,omitempty"`
	Fields   []validation.FieldError `json:"details,omitempty"`
	FuncName string                  `json:"-"`
	FileName string                  `json:"-"`
	err      error
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
		err:      err,
	}
}

// Newf constructs an error based on a error message.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	err := fmt.Errorf(format, v...)
	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
		err:      err,
	}
}

// Wrap constructs an error carrying a public message while keeping err as
// the cause for logging and errors.Is checks.
func Wrap(code ErrCode, err error, message string) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	e := &Error{
		Code:     code,
		Message:  message,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
		err:      err,
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		e.Fields = fields
	}

	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err == nil {
		return e.Message
	}
	return e.err.Error()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.err
}

// WithDetail attaches a human readable message next to the error string.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// Encode implements the encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	body := struct {
		Success bool `json:"success"`
		*Error
	}{Success: false, Error: e}

	data, err := json.Marshal(body)
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web package httpStatus interface so the
// web framework can use the correct http status.
func (e *Error) HTTPStatus() int {
	if e.Code.status == 0 {
		return http.StatusInternalServerError
	}
	return e.Code.status
}

// Equal provides support for the go-cmp package and testing.
func (e *Error) Equal(e2 *Error) bool {
	return e.Code == e2.Code && e.Message == e2.Message
}

// IsError tests the concrete error is of the Error type.
func IsError(err error) bool {
	var er *Error
	return errors.As(err, &er)
}

// GetError returns a copy of the Error pointer.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return nil
	}
	return er
}
