package quickbase

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure.
	// No request is sent when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransport is matched by every failure to complete an exchange with
	// the remote service.
	ErrTransport = errors.New("transport error")
)

// InvalidArgumentError reports rejected input for an operation.
type InvalidArgumentError struct {
	Op  string
	Err error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrInvalidArgument, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func invalidArgument(op string, err error) error {
	if err == nil {
		return nil
	}
	return &InvalidArgumentError{Op: op, Err: err}
}

// TransportError reports a request that never produced a complete response:
// connection, DNS, TLS, cancellation or body read failures.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Endpoint, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// APIError is the error payload Quickbase returns with non-2xx statuses.
type APIError struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	switch {
	case e.Message == "":
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	case e.Description == "":
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("API error (status %d): %s: %s", e.StatusCode, e.Message, e.Description)
	}
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr.Message = ""
		apiErr.Description = ""
	}
	return apiErr
}
