package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
	assert.Equal(t, BackendFile, s.Store.Backend)
	assert.NotEmpty(t, s.Store.Dir)
	assert.Equal(t, ":8080", s.Server.Address)
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fireplan.yaml")
	content := `
logging:
  level: debug
  format: json
store:
  backend: redis
  redis_addr: cache:6379
  redis_db: 2
server:
  address: 127.0.0.1:9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, BackendRedis, s.Store.Backend)
	assert.Equal(t, "cache:6379", s.Store.RedisAddr)
	assert.Equal(t, 2, s.Store.RedisDB)
	assert.Equal(t, "127.0.0.1:9000", s.Server.Address)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FIREPLAN_STORE_BACKEND", "redis")
	t.Setenv("FIREPLAN_LOGGING_LEVEL", "warn")

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, s.Store.Backend)
	assert.Equal(t, "warn", s.Logging.Level)
}

func TestLoadSettings_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("FIREPLAN_SERVER_ADDRESS", "")
	require.NoError(t, os.Unsetenv("FIREPLAN_SERVER_ADDRESS"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FIREPLAN_SERVER_ADDRESS=:7070\n"), 0o644))

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", s.Server.Address)
	require.NoError(t, os.Unsetenv("FIREPLAN_SERVER_ADDRESS"))
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading settings")
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{"backend", "FIREPLAN_STORE_BACKEND", "postgres", "unknown store backend"},
		{"level", "FIREPLAN_LOGGING_LEVEL", "loud", "unknown log level"},
		{"format", "FIREPLAN_LOGGING_FORMAT", "xml", "unknown log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.env, tt.value)
			_, err := LoadSettings("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.NoError(t, validateSettings(s))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
