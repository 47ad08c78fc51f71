package quickbase

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the Quickbase REST API v1 endpoint.
	DefaultBaseURL = "https://api.quickbase.com/v1"

	// DefaultUserAgent identifies this client to the remote service.
	DefaultUserAgent = "QuickBaseRestApiApp"

	// RealmDomain is appended to a realm short name to form the realm hostname.
	RealmDomain = ".quickbase.com"
)

// Config contains configuration for a Quickbase client.
//
// Example configuration (HCL):
//
//	quickbase {
//	  realm      = "acme"
//	  user_token = env("QB_USER_TOKEN")
//	  tls_verify = true
//	}
type Config struct {
	// UserToken is sent as "Authorization: QB-USER-TOKEN <token>".
	UserToken string `json:"-"`

	// AppToken is kept for callers that pair user tokens with app tokens.
	// It is not sent by the request primitive.
	AppToken string `json:"-"`

	// BaseURL of the REST API.
	// Default: https://api.quickbase.com/v1
	BaseURL string `json:"baseUrl,omitempty"`

	// Realm is the account short name ("acme") or full hostname
	// ("acme.quickbase.com").
	Realm string `json:"realm"`

	// UserAgent header value.
	// Default: QuickBaseRestApiApp
	UserAgent string `json:"userAgent,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout bounds a whole request. Zero leaves the transport default.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives request diagnostics (optional).
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	tlsVerify := true
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		TLSVerify: &tlsVerify,
	}
}

// withDefaults fills every unset field from DefaultConfig.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	} else {
		v := *c.TLSVerify
		c.TLSVerify = &v
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	return c
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserToken, validation.Required),
		validation.Field(&c.Realm, validation.Required, validation.By(noWhitespace)),
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// RealmHostname returns the value of the QB-Realm-Hostname header.
func (c Config) RealmHostname() string {
	realm := strings.ToLower(strings.TrimSpace(c.Realm))
	if realm == "" || strings.HasSuffix(realm, RealmDomain) {
		return realm
	}
	return realm + RealmDomain
}

// NewHTTPClient creates an HTTP client that never follows redirects.
func (c Config) NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Configure TLS verification
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}

func noWhitespace(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, " \t\r\n") {
		return fmt.Errorf("must not contain whitespace")
	}
	return nil
}
