package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Lending.validate(); err != nil {
		return fmt.Errorf("lending: %w", err)
	}

	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	if c.Score.Min > c.Score.Max {
		return fmt.Errorf("score: min (%d) must not exceed max (%d)", c.Score.Min, c.Score.Max)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return fmt.Errorf("tracing.endpoint is required when tracing is enabled")
	}

	return nil
}

func (l *LendingConfig) validate() error {
	if l.MaxOutstanding <= 0 {
		return fmt.Errorf("max_outstanding must be > 0 (got %d)", l.MaxOutstanding)
	}
	if l.LoanPeriod < 24*time.Hour {
		return fmt.Errorf("loan_period must be at least 24h (got %s)", l.LoanPeriod)
	}
	return nil
}
