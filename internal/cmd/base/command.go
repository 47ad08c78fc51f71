package base

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/quickbase/internal/config"
	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

// Exit codes shared by the API commands.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitAPIStatus = 2
)

// Output formats accepted by -format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatRaw  = "raw"
)

// Command carries what every subcommand needs.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	Fs  afero.Fs

	// Doer replaces the HTTP transport built from the configuration.
	Doer quickbase.Doer

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// DotEnv enables loading a .env file alongside the configuration.
	DotEnv bool
}

// ClientFlags are accepted by every command that talks to the API.
type ClientFlags struct {
	Config string
	Format string
}

// AddClientFlags registers -config and -format on f.
func (c *Command) AddClientFlags(f *FlagSet, cf *ClientFlags) {
	f.StringVar(
		&cf.Config, "config", "",
		"[QB_CONFIG] Path to an HCL configuration file",
	)
	f.StringVar(
		&cf.Format, "format", FormatJSON,
		"Output format (json, yaml, raw)",
	)
}

func (c *Command) lookupEnv(key string) (string, bool) {
	if c.LookupEnv != nil {
		return c.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

// NewClient loads configuration and builds a client.
func (c *Command) NewClient(cf ClientFlags) (*quickbase.Client, error) {
	switch cf.Format {
	case FormatJSON, FormatYAML, FormatRaw:
	default:
		return nil, fmt.Errorf("unsupported format %q", cf.Format)
	}

	path := cf.Config
	if path == "" {
		if v, ok := c.lookupEnv("QB_CONFIG"); ok {
			path = v
		}
	}

	loader := &config.Loader{
		Fs:        c.Fs,
		LookupEnv: c.lookupEnv,
		DotEnv:    c.DotEnv,
	}
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Logger = c.Log

	var opts []quickbase.Option
	if c.Doer != nil {
		opts = append(opts, quickbase.WithDoer(c.Doer))
	}
	return quickbase.NewClient(cfg, opts...)
}

// Respond prints the outcome of an API call and returns the exit code.
func (c *Command) Respond(resp *quickbase.Response, err error, format string) int {
	if err != nil {
		c.UI.Error(err.Error())
		return ExitError
	}

	out, rerr := Render(resp.Body, format)
	if rerr != nil {
		c.Log.Debug("response is not JSON, printing raw body", "error", rerr)
		out = resp.String()
	}

	if !resp.OK() {
		c.UI.Error(resp.Err().Error())
		if out != "" {
			c.UI.Output(out)
		}
		return ExitAPIStatus
	}

	c.UI.Output(out)
	return ExitOK
}

// Render re-encodes a JSON body in format.
func Render(body []byte, format string) (string, error) {
	switch format {
	case FormatRaw:
		return string(body), nil

	case FormatYAML:
		var v interface{}
		if err := json.Unmarshal(body, &v); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(bytes.TrimSuffix(out, []byte("\n"))), nil

	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			return "", fmt.Errorf("failed to format response: %w", err)
		}
		return buf.String(), nil
	}
}
