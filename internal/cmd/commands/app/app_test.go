package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

func newCommand(baseURL string) (*Command, *cli.MockUi) {
	env := map[string]string{
		"QB_REALM":      "Demo",
		"QB_USER_TOKEN": "token",
		"QB_BASE_URL":   baseURL,
	}
	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}}, ui
}

func TestCommand_Get(t *testing.T) {
	var realm, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		realm, path = r.Header.Get("QB-Realm-Hostname"), r.URL.Path
		_, _ = w.Write([]byte(`{"id":"bqz1","name":"Projects"}`))
	}))
	defer server.Close()

	c, ui := newCommand(server.URL)
	require.Equal(t, base.ExitOK, c.Run([]string{"-app-id", "bqz1", "-format", "yaml"}), ui.ErrorWriter.String())

	assert.Equal(t, "demo.quickbase.com", realm)
	assert.Equal(t, "/apps/bqz1", path)
	assert.Contains(t, ui.OutputWriter.String(), "name: Projects")
}

func TestCommand_Open(t *testing.T) {
	var opened string
	orig := openURL
	openURL = func(u string) error {
		opened = u
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	c, ui := newCommand("http://127.0.0.1:1")
	require.Equal(t, base.ExitOK, c.Run([]string{"-app-id", "bqz1", "-open"}), ui.ErrorWriter.String())
	assert.Equal(t, "https://demo.quickbase.com/db/bqz1", opened)
}

func TestCommand_OpenErrors(t *testing.T) {
	orig := openURL
	openURL = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { openURL = orig })

	c, ui := newCommand("http://127.0.0.1:1")
	assert.Equal(t, base.ExitError, c.Run([]string{"-open"}))
	assert.Contains(t, ui.ErrorWriter.String(), "app-id flag is required")

	c, ui = newCommand("http://127.0.0.1:1")
	assert.Equal(t, base.ExitError, c.Run([]string{"-app-id", "bqz1", "-open"}))
	assert.Contains(t, ui.ErrorWriter.String(), "no display")
}
