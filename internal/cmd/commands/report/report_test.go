package report

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

func setup(t *testing.T, status int, reply string) (*base.Command, *cli.MockUi, *string) {
	t.Helper()
	uri := new(string)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*uri = r.URL.RequestURI()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)

	env := map[string]string{
		"QB_REALM":      "demo",
		"QB_USER_TOKEN": "token",
		"QB_BASE_URL":   server.URL,
	}
	ui := cli.NewMockUi()
	return &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}, ui, uri
}

func TestListCommand(t *testing.T) {
	b, ui, uri := setup(t, http.StatusOK, `[{"id":"1","name":"List All"}]`)

	c := &ListCommand{Command: b}
	require.Equal(t, base.ExitOK, c.Run([]string{"-table-id", "bqz9", "-format", "raw"}), ui.ErrorWriter.String())

	assert.Equal(t, "/reports?tableId=bqz9", *uri)
	assert.Equal(t, `[{"id":"1","name":"List All"}]`+"\n", ui.OutputWriter.String())
}

func TestGetCommand(t *testing.T) {
	b, ui, uri := setup(t, http.StatusNotFound, `{"message":"Not found","description":"Report 9 does not exist"}`)

	c := &GetCommand{Command: b}
	assert.Equal(t, base.ExitAPIStatus, c.Run([]string{"-report-id", "9", "-table-id", "bqz9"}))

	assert.Equal(t, "/reports/9?tableId=bqz9", *uri)
	assert.Contains(t, ui.ErrorWriter.String(), "status 404")
	assert.Contains(t, ui.OutputWriter.String(), `"message": "Not found"`)
}

func TestGetCommand_MissingTable(t *testing.T) {
	b, ui, uri := setup(t, http.StatusOK, `{}`)

	c := &GetCommand{Command: b}
	assert.Equal(t, base.ExitError, c.Run([]string{"-report-id", "9"}))
	assert.Contains(t, ui.ErrorWriter.String(), "tableId")
	assert.Empty(t, *uri)
}
