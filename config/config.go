package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// DBPath is the sqlite file used when DBDriver is "sqlite"
	DBPath string

	// Redis configuration
	RedisURL string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Mailgun configuration
	MailgunAPIKey    string
	MailgunDomain    string
	MailgunFromEmail string

	// S3 configuration
	S3BucketName string
	AWSRegion    string

	// Events backend: "redis", "amqp" or "none"
	EventsBackend string
	AMQPURL       string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	CORSOrigins []string
}

// secretKeys are read from SECRETS_DIR and override environment values.
var secretKeys = []string{
	"db_user",
	"db_password",
	"jwt_secret",
	"redis_url",
	"mailgun_api_key",
	"amqp_url",
}

// LoadConfig builds a Config from environment variables, defaults and Docker secrets
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := loadSecrets(v); err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	cfg := &Config{
		Env:               GetEnvironment(),
		ServerPort:        v.GetString("server_port"),
		ServerHost:        v.GetString("server_host"),
		DBDriver:          strings.ToLower(v.GetString("db_driver")),
		DBHost:            v.GetString("db_host"),
		DBPort:            v.GetString("db_port"),
		DBUser:            v.GetString("db_user"),
		DBPassword:        v.GetString("db_password"),
		DBName:            v.GetString("db_name"),
		DBSSLMode:         v.GetString("db_ssl_mode"),
		DBPath:            v.GetString("db_path"),
		RedisURL:          v.GetString("redis_url"),
		JWTSecret:         v.GetString("jwt_secret"),
		JWTTTL:            v.GetDuration("jwt_ttl"),
		MailgunAPIKey:     v.GetString("mailgun_api_key"),
		MailgunDomain:     v.GetString("mailgun_domain"),
		MailgunFromEmail:  v.GetString("mailgun_from_email"),
		S3BucketName:      v.GetString("s3_bucket_name"),
		AWSRegion:         v.GetString("aws_region"),
		EventsBackend:     strings.ToLower(v.GetString("events_backend")),
		AMQPURL:           v.GetString("amqp_url"),
		RateLimitRequests: v.GetInt("rate_limit_requests"),
		RateLimitWindow:   v.GetDuration("rate_limit_window"),
		CORSOrigins:       splitList(v.GetString("cors_origins")),
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the connection string for the configured Postgres database
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", "4000")
	v.SetDefault("server_host", "")
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "nubereats")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("db_path", "nubereats.db")
	v.SetDefault("redis_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", 24*time.Hour)
	v.SetDefault("mailgun_domain", "")
	v.SetDefault("mailgun_from_email", "")
	v.SetDefault("s3_bucket_name", "nubereats-uploads")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("events_backend", "none")
	v.SetDefault("rate_limit_requests", 300)
	v.SetDefault("rate_limit_window", time.Minute)
	v.SetDefault("cors_origins", "http://localhost:3000")
}

// loadSecrets overlays Docker secrets found in SECRETS_DIR. Missing files are skipped.
func loadSecrets(v *viper.Viper) error {
	dir := secretsDir()
	for _, name := range secretKeys {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read secret %s: %w", name, err)
		}
		if value := strings.TrimSpace(string(content)); value != "" {
			v.Set(name, value)
		}
	}
	return nil
}

func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
