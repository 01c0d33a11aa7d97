package config_test

import (
	"os"
	"path/filepath"
	"petregistry/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad_DefaultsAndYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
environment: production
jwt:
  secret: s3cret
storage:
  driver: memory
registry:
  operationTimeout: 3s
`)

	cfg, err := config.Load(path, "")
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
	require.Equal(t, time.Hour, cfg.JWT.TTL)
	require.Equal(t, 12, cfg.Password.BcryptCost)
	require.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	require.Equal(t, 3*time.Second, cfg.Registry.OperationTimeout)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.False(t, cfg.HTTP.Pprof)
}

func TestLoad_EnvOverridesAndEnvFile(t *testing.T) {
	path := writeFile(t, "config.yml", "jwt:\n  secret: from-yaml\n")
	envFile := writeFile(t, ".env", "PASSWORD_BCRYPT_COST=4\nHTTP_ADDR=:9090\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Cleanup(func() { _ = os.Unsetenv("PASSWORD_BCRYPT_COST") })

	cfg, err := config.Load(path, envFile)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.JWT.Secret)
	require.Equal(t, 4, cfg.Password.BcryptCost)
	require.Equal(t, ":7070", cfg.HTTP.Addr, "variables already set win over the env file")
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	path := writeFile(t, "config.yml", "jwt:\n  secret: s\n")

	_, err := config.Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"), "")
		require.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "config.yml", "environment: development\n"), "")
		require.ErrorContains(t, err, "jwt.secret")
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "config.yml", "jwt:\n  secret: s\nstorage:\n  driver: redis\n"), "")
		require.ErrorContains(t, err, "unknown storage driver")
	})
}
