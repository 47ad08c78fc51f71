package quickbase

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw reply of the remote service. Non-2xx statuses are
// returned as responses, not errors; use Err to inspect them.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// String returns the raw body.
func (r *Response) String() string {
	return string(r.Body)
}

// Err returns an *APIError for non-2xx responses and nil otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return parseAPIError(r.StatusCode, r.Body)
}

// Decode unmarshals a successful JSON body into v.
func (r *Response) Decode(v interface{}) error {
	if err := r.Err(); err != nil {
		return err
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
