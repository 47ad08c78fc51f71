package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T, files map[string]string, env map[string]string) *Loader {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o600))
	}
	return &Loader{
		Fs: fs,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "QB_USER_TOKEN", EnvName("user_token"))
	assert.Equal(t, "QB_TLS_VERIFY", EnvName("tls_verify"))
	assert.Equal(t, "QB_BASE_URL", EnvName("base_url"))
}

func TestLoader_Load_File(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"/etc/qb/config.hcl": `
quickbase {
  realm      = "acme"
  user_token = "b7738j_file"
  app_token  = "app"
  base_url   = "https://api.example.test/v1"
  user_agent = "qb-test"
  tls_verify = false
  timeout    = "45s"
}
`,
	}, nil)

	cfg, err := loader.Load("/etc/qb/config.hcl")
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Realm)
	assert.Equal(t, "b7738j_file", cfg.UserToken)
	assert.Equal(t, "app", cfg.AppToken)
	assert.Equal(t, "https://api.example.test/v1", cfg.BaseURL)
	assert.Equal(t, "qb-test", cfg.UserAgent)
	require.NotNil(t, cfg.TLSVerify)
	assert.False(t, *cfg.TLSVerify)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"config.hcl": `
quickbase {
  realm      = "acme"
  user_token = "from-file"
}
`,
	}, map[string]string{
		"QB_USER_TOKEN": "from-env",
		"QB_TLS_VERIFY": "true",
		"QB_TIMEOUT":    "2m",
		"QB_APP_TOKEN":  "",
	})

	cfg, err := loader.Load("config.hcl")
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Realm)
	assert.Equal(t, "from-env", cfg.UserToken)
	assert.Empty(t, cfg.AppToken)
	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoader_Load_EnvOnly(t *testing.T) {
	loader := newTestLoader(t, nil, map[string]string{
		"QB_REALM":      "acme",
		"QB_USER_TOKEN": "token",
	})

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Realm)
	assert.Equal(t, "token", cfg.UserToken)
	assert.Nil(t, cfg.TLSVerify)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		env   map[string]string
		want  string
	}{
		{
			name: "missing file",
			want: "configuration file not found",
		},
		{
			name:  "bad syntax",
			files: map[string]string{"config.hcl": `quickbase {`},
			want:  "failed to parse configuration file",
		},
		{
			name:  "unknown attribute",
			files: map[string]string{"config.hcl": "quickbase {\n  colour = \"red\"\n}\n"},
			want:  "failed to parse configuration file",
		},
		{
			name:  "bad timeout",
			files: map[string]string{"config.hcl": "quickbase {\n  timeout = \"soon\"\n}\n"},
			want:  "invalid timeout",
		},
		{
			name:  "bad tls env",
			files: map[string]string{"config.hcl": "quickbase {}\n"},
			env:   map[string]string{"QB_TLS_VERIFY": "maybe"},
			want:  "invalid environment override",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestLoader(t, tt.files, tt.env).Load("config.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
