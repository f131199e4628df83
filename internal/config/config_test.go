package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishbot91/todo-project/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
log_level: DEBUG
db_path: /tmp/test-todos.db
http:
  address: ":9090"
  timeout: 10s
auth:
  username: admin
  password: secret
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "/tmp/test-todos.db", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, "secret", cfg.Auth.Password)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  username: admin
  password: secret
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("TODO_AUTH_USERNAME", "envuser")
	t.Setenv("TODO_AUTH_PASSWORD", "envpass")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "envuser", cfg.Auth.Username)
	assert.Equal(t, "envpass", cfg.Auth.Password)
}

func TestLoadRequiresCredentials(t *testing.T) {
	path := writeConfig(t, "log_level: INFO\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}
