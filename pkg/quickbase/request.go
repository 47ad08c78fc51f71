package quickbase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Header names sent with every request.
const (
	HeaderRealmHostname = "QB-Realm-Hostname"
	HeaderUserAgent     = "User-Agent"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	userTokenScheme = "QB-USER-TOKEN "
	contentTypeJSON = "application/json"
)

// Header is a single name/value pair of a Request.
type Header struct {
	Name  string
	Value string
}

// Request is a fully authenticated outbound call, built fresh per operation.
type Request struct {
	Method string
	// Path is relative to the base URL and already carries its query string.
	Path    string
	Headers []Header
	// Body is nil for GET.
	Body []byte
}

// Get returns the value of the first header named name.
func (r *Request) Get(name string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// NewRequest assembles the request for method and path. A POST needs a
// non-empty body; a GET drops any body it is given.
func (c *Client) NewRequest(method, path string, body []byte) (*Request, error) {
	switch method {
	case http.MethodGet:
		body = nil
	case http.MethodPost:
		if len(body) == 0 {
			return nil, invalidArgument("request", fmt.Errorf("POST %s requires a body", path))
		}
	default:
		return nil, invalidArgument("request", fmt.Errorf("unsupported method %q", method))
	}
	if !strings.HasPrefix(path, "/") {
		return nil, invalidArgument("request", fmt.Errorf("path %q must start with /", path))
	}

	return &Request{
		Method: method,
		Path:   path,
		Headers: []Header{
			{Name: HeaderRealmHostname, Value: c.config.RealmHostname()},
			{Name: HeaderUserAgent, Value: c.config.UserAgent},
			{Name: HeaderAuthorization, Value: userTokenScheme + c.config.UserToken},
			{Name: HeaderContentType, Value: contentTypeJSON},
		},
		Body: body,
	}, nil
}

// encodeJSON marshals v without HTML escaping so that query-language text
// such as {3.LT.5} or {6.EX.'a&b'} reaches the service verbatim.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
