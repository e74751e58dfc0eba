// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/validation"
)

// Validate checks that the configuration is usable.
// An empty client section is valid: the CLI may supply everything through flags.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateClient(); err != nil {
		return err
	}

	if err := c.validateDevServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateClient() error {
	if c.Client.ServiceURL == "" {
		return nil
	}
	if err := validateServiceURL(c.Client.ServiceURL, "SKILLS_SERVICE_URL"); err != nil {
		return fmt.Errorf("SKILLS_SERVICE_URL is invalid: %w", err)
	}
	return nil
}

func (c *Config) validateDevServer() error {
	if c.DevServer.Proxy != "" {
		if err := validateHTTPURL(c.DevServer.Proxy, "DEV_SERVER_PROXY"); err != nil {
			return fmt.Errorf("DEV_SERVER_PROXY is invalid: %w", err)
		}
	}

	if c.DevServer.RateLimitRequests > 0 && c.DevServer.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when RATE_LIMIT_REQUESTS is set")
	}

	if !strings.HasPrefix(c.DevServer.MetricsPath, "/") && c.DevServer.MetricsPath != "" {
		return fmt.Errorf("METRICS_PATH must start with '/', got: %s", c.DevServer.MetricsPath)
	}

	for alias, dir := range c.DevServer.Aliases {
		if strings.ContainsAny(alias, "/ ") {
			return fmt.Errorf("DEV_SERVER_ALIASES: alias %q must not contain '/' or spaces", alias)
		}
		if dir == "" {
			return fmt.Errorf("DEV_SERVER_ALIASES: alias %q has no directory", alias)
		}
	}

	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled; got: %s", c.Logging.Level)
	}
	return nil
}
