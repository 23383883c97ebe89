package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigWithDefaults(t *testing.T) {
	setTestEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "4000", cfg.ServerPort)
	assert.Equal(t, ":4000", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "nubereats", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "none", cfg.EventsBackend)
	assert.Equal(t, 300, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	setTestEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/eats.db")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("EVENTS_BACKEND", "redis")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/eats.db", cfg.DBPath)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "redis", cfg.EventsBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfigSecretsOverrideEnvironment(t *testing.T) {
	setTestEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("DB_PASSWORD", "from-env")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("s3cret"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "redis_url"), []byte("   "), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-secret", cfg.JWTSecret)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	setTestEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "jwt_secret", verrs[0].Field)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:           Development,
			DBDriver:      "sqlite",
			JWTSecret:     "secret",
			EventsBackend: "none",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unsupported driver", mutate: func(c *Config) { c.DBDriver = "mysql" }, fields: []string{"db_driver"}},
		{name: "unsupported events backend", mutate: func(c *Config) { c.EventsBackend = "kafka" }, fields: []string{"events_backend"}},
		{name: "amqp without url", mutate: func(c *Config) { c.EventsBackend = "amqp" }, fields: []string{"amqp_url"}},
		{name: "negative ttl", mutate: func(c *Config) { c.JWTTTL = -time.Second }, fields: []string{"jwt_ttl"}},
		{
			name:   "production secrets",
			mutate: func(c *Config) { c.Env = Production },
			fields: []string{"db_password", "mailgun_api_key", "redis_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var got []string
			for _, e := range verrs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("ENV", "production")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}

func TestParseEnvironment(t *testing.T) {
	tests := map[string]Environment{
		"production": Production,
		" PROD ":     Production,
		"test":       Test,
		"ci":         CI,
		"dev":        Development,
		"staging":    Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseEnvironment(in), in)
	}
}

func TestObjectURL(t *testing.T) {
	s := &S3Config{BucketName: "covers", Region: "eu-west-1"}
	assert.Equal(t, "https://covers.s3.eu-west-1.amazonaws.com/restaurants/a.png", s.ObjectURL("restaurants/a.png"))
}
