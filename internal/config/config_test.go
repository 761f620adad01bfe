package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_BASE_URL", "API_TIMEOUT_SECONDS", "SESSION_COOKIE", "UPLOAD_MAX_MB", "RETENTION_DAYS", "DB_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5678", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "jwt", cfg.Session.CookieName)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 90, cfg.Retention.Days)
	assert.False(t, cfg.Database.Enabled, "audit database is opt-in")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://api.billed.test")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("UPLOAD_MAX_MB", "2")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.test , ,https://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://api.billed.test", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, int64(2<<20), cfg.Upload.MaxBytes)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_RejectsNonPositiveUpload(t *testing.T) {
	t.Setenv("UPLOAD_MAX_MB", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.GetDSN())
}
