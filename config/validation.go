package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a Config
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// requiredSecrets lists the values each environment must provide
var requiredSecrets = map[Environment][]string{
	Development: {"jwt_secret"},
	Test:        {"jwt_secret"},
	CI:          {"jwt_secret", "db_password"},
	Production:  {"jwt_secret", "db_password", "mailgun_api_key", "redis_url"},
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	values := map[string]string{
		"jwt_secret":      cfg.JWTSecret,
		"db_password":     cfg.DBPassword,
		"mailgun_api_key": cfg.MailgunAPIKey,
		"redis_url":       cfg.RedisURL,
	}
	for _, name := range requiredSecrets[cfg.Env] {
		if values[name] == "" {
			errs = append(errs, ValidationError{Field: name, Message: "is required in " + string(cfg.Env)})
		}
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, ValidationError{Field: "db_driver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	switch cfg.EventsBackend {
	case "none", "redis":
	case "amqp":
		if cfg.AMQPURL == "" {
			errs = append(errs, ValidationError{Field: "amqp_url", Message: "is required when events_backend is amqp"})
		}
	default:
		errs = append(errs, ValidationError{Field: "events_backend", Message: fmt.Sprintf("unsupported backend %q", cfg.EventsBackend)})
	}

	if cfg.JWTTTL < 0 {
		errs = append(errs, ValidationError{Field: "jwt_ttl", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
