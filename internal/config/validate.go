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
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth: token ttl must be > 0")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Stats.validate(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	if c.Schedule.HardDeleteRetentionDays <= 0 {
		return fmt.Errorf("schedule.hard_delete_retention_days must be > 0 (got %d)", c.Schedule.HardDeleteRetentionDays)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (s *StatsConfig) validate() error {
	name := strings.TrimSpace(s.HomeTimezone)
	if name == "" {
		return fmt.Errorf("home_timezone is required")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("home_timezone %q: %w", name, err)
	}
	s.Location = loc
	return nil
}
