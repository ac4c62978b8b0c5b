package application

import "errors"

// Sentinel errors mapped to HTTP status codes by the router.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// RequestError carries a client-facing message and matches ErrBadRequest.
type RequestError struct {
	Msg string
}

func (e *RequestError) Error() string { return e.Msg }

func (e *RequestError) Is(target error) bool { return target == ErrBadRequest }

// BadRequest builds a RequestError with the given message.
func BadRequest(msg string) error {
	return &RequestError{Msg: msg}
}
