package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// requirement is an environment-specific check on top of the struct tags.
type requirement struct {
	field string
	ok    func(*Config) bool
	msg   string
}

var requirements = map[Environment][]requirement{
	CI: {
		{"database.password", func(c *Config) bool { return c.Database.Driver != "postgres" || c.Database.Password != "" }, "TEST_DB_PASSWORD is required in CI"},
	},
	Production: {
		{"database.driver", func(c *Config) bool { return c.Database.Driver == "postgres" }, "production requires the postgres driver"},
		{"database.password", func(c *Config) bool { return c.Database.Password != "" }, "db_password secret is required"},
		{"auth.jwt_secret", func(c *Config) bool { return c.Auth.JWTSecret != "" }, "jwt_secret secret is required"},
		{"redis.password", func(c *Config) bool { return !c.Redis.Enabled() || c.Redis.Password != "" }, "redis_password secret is required when redis is enabled"},
	},
}

// ValidateConfig checks struct constraints and the requirements of cfg.Env.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if err := validatorInstance().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate configuration: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config.")),
				Message: describe(fe),
			})
		}
	}

	for _, r := range requirements[cfg.Env] {
		if !r.ok(cfg) {
			errs = append(errs, ValidationError{Field: r.field, Message: r.msg})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
