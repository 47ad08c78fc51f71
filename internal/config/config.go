package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

// EnvPrefix is prepended to every attribute name to form its environment
// variable, e.g. user_token -> QB_USER_TOKEN.
const EnvPrefix = "qb"

// File is the layout of a configuration file.
//
//	quickbase {
//	  realm      = "acme"
//	  user_token = "b7738j_..."
//	  timeout    = "30s"
//	}
type File struct {
	Quickbase *Quickbase `hcl:"quickbase,block"`
}

// Quickbase holds the client settings. Every attribute can be overridden by
// its QB_* environment variable.
type Quickbase struct {
	UserToken string `hcl:"user_token,optional"`
	AppToken  string `hcl:"app_token,optional"`
	Realm     string `hcl:"realm,optional"`
	BaseURL   string `hcl:"base_url,optional"`
	UserAgent string `hcl:"user_agent,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
	Timeout   string `hcl:"timeout,optional"`
}

// attributes lists the overridable attribute names.
var attributes = []string{
	"user_token",
	"app_token",
	"realm",
	"base_url",
	"user_agent",
	"tls_verify",
	"timeout",
}

// EnvName returns the environment variable overriding attribute.
func EnvName(attribute string) string {
	return strcase.ToScreamingSnake(EnvPrefix + "_" + attribute)
}

// Loader reads configuration from a file system and the environment.
type Loader struct {
	Fs afero.Fs

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// DotEnv loads a .env file next to the configuration file (or in the
	// working directory) before the environment is read.
	DotEnv bool
}

// NewLoader returns a Loader over the OS file system and environment.
func NewLoader() *Loader {
	return &Loader{
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
		DotEnv:    true,
	}
}

// Load builds a client configuration. filename may be empty when the
// environment supplies everything.
func (l *Loader) Load(filename string) (quickbase.Config, error) {
	if l.DotEnv {
		dir := "."
		if filename != "" {
			dir = filepath.Dir(filename)
		}
		// A missing .env file is fine.
		_ = godotenv.Load(filepath.Join(dir, ".env"))
	}

	qb := &Quickbase{}
	if filename != "" {
		f, err := l.parseFile(filename)
		if err != nil {
			return quickbase.Config{}, err
		}
		if f.Quickbase != nil {
			qb = f.Quickbase
		}
	}

	if err := l.applyEnv(qb); err != nil {
		return quickbase.Config{}, err
	}

	cfg, err := qb.ClientConfig()
	if err != nil {
		return quickbase.Config{}, err
	}
	return cfg, nil
}

func (l *Loader) parseFile(filename string) (*File, error) {
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var f File
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	return &f, nil
}

// applyEnv overlays QB_* variables onto qb.
func (l *Loader) applyEnv(qb *Quickbase) error {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	overrides := map[string]interface{}{}
	for _, attr := range attributes {
		if v, ok := lookup(EnvName(attr)); ok && v != "" {
			overrides[attr] = v
		}
	}
	if len(overrides) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "hcl",
		WeaklyTypedInput: true,
		Result:           qb,
	})
	if err != nil {
		return fmt.Errorf("failed to create env decoder: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}
	return nil
}

// ClientConfig converts the file settings into a client configuration.
func (q *Quickbase) ClientConfig() (quickbase.Config, error) {
	cfg := quickbase.Config{
		UserToken: q.UserToken,
		AppToken:  q.AppToken,
		Realm:     q.Realm,
		BaseURL:   q.BaseURL,
		UserAgent: q.UserAgent,
		TLSVerify: q.TLSVerify,
	}
	if q.Timeout != "" {
		d, err := time.ParseDuration(q.Timeout)
		if err != nil {
			return quickbase.Config{}, fmt.Errorf("invalid timeout %q: %w", q.Timeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
