// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/listenlog/internal/validation"
)

const (
	minPasswordLength = 8
	maxRateLimitReqs  = 100000
	minRateLimitWin   = time.Second
	maxRateLimitWin   = time.Hour
)

// Validate checks field constraints and then the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateAuthModeConfig(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

func (c *Config) validateAuthModeConfig() error {
	if c.Security.AuthMode != "basic" {
		return nil
	}
	if c.Security.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required when AUTH_MODE=basic")
	}
	if len(c.Security.AdminPassword) < minPasswordLength {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters when AUTH_MODE=basic", minPasswordLength)
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > maxRateLimitReqs {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and %d (or set DISABLE_RATE_LIMIT=true)", maxRateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWin || c.Security.RateLimitWindow > maxRateLimitWin {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %s and %s", minRateLimitWin, maxRateLimitWin)
	}
	return nil
}

// AuthEnabled reports whether requests must authenticate.
func (c *Config) AuthEnabled() bool {
	return c.Security.AuthMode == "basic"
}
