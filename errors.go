package cloudns

import (
	"encoding/json"
	"errors"
	"fmt"
)

// maxErrBodySize caps the amount of response body read when building
// an error for a non-200 reply. This prevents unbounded memory usage
// when a large response arrives with an error status.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrInvalidArgument is the sentinel error wrapped by [InvalidArgumentError].
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAPIFailure is the sentinel error wrapped by [APIError].
	ErrAPIFailure = errors.New("api request failed")
)

// InvalidArgumentError is returned for caller mistakes detected before
// any network access: an unsupported HTTP method, or record data that
// fails validation. It is never retried automatically.
type InvalidArgumentError struct {
	Reason string
	Err    error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func invalidArgument(reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: reason, Err: ErrInvalidArgument}
}

// invalidRecord wraps a validation failure so callers can match either
// ErrInvalidArgument or the underlying FieldErrors.
func invalidRecord(err error) *InvalidArgumentError {
	return &InvalidArgumentError{
		Reason: err.Error(),
		Err:    fmt.Errorf("%w: %w", ErrInvalidArgument, err),
	}
}

// APIError is returned when the vendor replies with a non-200 status.
// Body preserves the error document byte-for-byte for caller
// inspection; Status and Description are decoded from it when the
// body is the vendor's usual JSON error shape.
type APIError struct {
	StatusCode  int
	Status      string
	Description string
	Body        json.RawMessage
	Err         error
}

func newAPIError(code int, body []byte) *APIError {
	e := &APIError{
		StatusCode: code,
		Body:       body,
		Err:        ErrAPIFailure,
	}

	var decoded struct {
		Status            string `json:"status"`
		StatusDescription string `json:"statusDescription"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		e.Status = decoded.Status
		e.Description = decoded.StatusDescription
	}

	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
