package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/staffdb/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		JWTSecret:           "secret",
		Issuer:              "staffdb",
		AccessTokenTTL:      30 * time.Minute,
		Username:            "hr-admin",
		Password:            "hunter2",
		DatabaseDriver:      DriverSQLite,
		DatabaseURL:         ":memory:",
		DBName:              "staffdb",
		LogLevel:            "error",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	for _, k := range []string{
		"AUTH_ISSUER", "ACCESS_TOKEN_TTL", "DATABASE_DRIVER", "DATABASE_URL",
		"MONGO_URI", "DB_NAME", "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("JWT_SECRET_KEY", "s")
	t.Setenv("AUTH_USERNAME", "u")
	t.Setenv("AUTH_PASSWORD", "p")

	cfg := LoadConfig()
	require.Equal(t, "staffdb", cfg.Issuer)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "employees.db", cfg.DatabaseURL)
	require.Equal(t, "staffdb", cfg.DBName)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mongo")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("ACCESS_TOKEN_TTL", "15")
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, DriverMongo, cfg.DatabaseDriver)
	require.Equal(t, "mongodb://db:27017", cfg.DatabaseURL)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET_KEY"},
		{"missing username", func(c *Config) { c.Username = "" }, "AUTH_USERNAME"},
		{"missing password", func(c *Config) { c.Password = "" }, "AUTH_PASSWORD"},
		{"bad hash", func(c *Config) { c.PasswordHash = "plain" }, "AUTH_PASSWORD_HASH"},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "oracle" }, "DATABASE_DRIVER"},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres; c.DatabaseURL = "" }, "DATABASE_URL"},
		{"zero ttl", func(c *Config) { c.AccessTokenTTL = 0 }, "ACCESS_TOKEN_TTL"},
	}

	require.NoError(t, validConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTokenConfig(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Pepper = "pep"
	tc, err := cfg.TokenConfig()
	require.NoError(t, err)
	require.True(t, cryptox.IsPHCHash(tc.PasswordHash))
	require.NoError(t, cryptox.PasswordHasher{Pepper: "pep"}.Verify("hunter2", tc.PasswordHash))

	cfg.PasswordHash = tc.PasswordHash
	cfg.Password = ""
	again, err := cfg.TokenConfig()
	require.NoError(t, err)
	require.Equal(t, tc.PasswordHash, again.PasswordHash)
}

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "employees.db")
	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	bad := validConfig()
	bad.JWTSecret = ""
	_, err = New(bad)
	require.ErrorContains(t, err, "invalid configuration")
}
