// Package cerr provides the common error type which carries an HTTP
// status code from the core layer up to the RESTful adapter layer,
// so use cases can classify their failures (bad request, not found,
// conflict, or an unavailable external collaborator) without knowing
// about the serialization details.
package cerr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

func ServiceUnavailable(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusServiceUnavailable}
}
