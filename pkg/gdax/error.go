package gdax

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSecretKey is returned when the api secret is not valid base64.
var ErrInvalidSecretKey = errors.New("invalid secret key")

// ErrOrderNotFound is returned when a cancel request comes back with an empty
// id list, which is what the exchange does for an order it never issued.
var ErrOrderNotFound = errors.New("order not found")

// APIError is returned when the exchange responds with a non-2xx status.
// Message carries the raw response body text verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server responded with a %d status code: %s", e.StatusCode, e.Message)
}

// TransportError wraps a network level failure from the underlying http
// client.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a success response body does not match the
// expected structure, or when an enumerated field holds an unrecognized
// string value. It is a distinct kind from APIError so callers can tell "the
// exchange rejected my request" apart from "the response didn't match my
// expectations".
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return "decode error: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
