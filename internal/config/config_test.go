package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_DRIVER", "LEDGER_MAX_RETRIES", "DATABASE_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Ledger.MaxRetries)
	assert.Equal(t, "0 * * * *", cfg.Scheduler.LateShipmentCron)
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_DRIVER", "LEDGER_MAX_RETRIES", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nSTORE_DRIVER=MEMORY\nLEDGER_MAX_RETRIES=5\nCORS_ALLOWED_ORIGINS=http://a.com, http://b.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Ledger.MaxRetries)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load(filepath.Join(t.TempDir(), "x.env"))
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LEDGER_MAX_RETRIES", "abc")
	_, err = Load(filepath.Join(t.TempDir(), "x.env"))
	assert.Error(t, err)

	t.Setenv("LEDGER_MAX_RETRIES", "0")
	_, err = Load(filepath.Join(t.TempDir(), "x.env"))
	assert.Error(t, err)
}

func TestConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "bizit", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/bizit?sslmode=disable", d.ConnectionString())

	d.URL = "postgres://outro"
	assert.Equal(t, "postgres://outro", d.ConnectionString())
}
