// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment Variables: explicit mapping in envTransformFunc
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Client    ClientConfig    `koanf:"client"`
	DevServer DevServerConfig `koanf:"dev_server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ClientConfig seeds the skills and settings facades.
//
// Environment Variables:
//   - SKILLS_SERVICE_URL: base address of the skills backend (e.g., http://localhost:8080)
//   - SKILLS_PROJECT_ID: project the facades start in
//   - SKILLS_USER_ID: acting user; when set requests go to /admin/projects
//   - SKILLS_TOKEN: bearer token attached to every request
//   - SKILLS_TIMEOUT: per-request timeout, 0 disables it (default: 0)
type ClientConfig struct {
	ServiceURL string        `koanf:"service_url"`
	ProjectID  string        `koanf:"project_id"`
	UserID     string        `koanf:"user_id"`
	Token      string        `koanf:"token"`
	Timeout    time.Duration `koanf:"timeout" validate:"gte=0"`
}

// DevServerConfig holds the local development server settings.
//
// The server serves StaticDir at "/", mounts each alias directory at
// "/<alias>/", and proxies every request no file answers to Proxy.
//
// Environment Variables:
//   - DEV_SERVER_HOST (default: localhost)
//   - DEV_SERVER_PORT (default: 8082)
//   - DEV_SERVER_PROXY (default: http://localhost:8080)
//   - DEV_SERVER_STATIC_DIR (default: public)
//   - DEV_SERVER_ALIASES: comma-separated alias=dir pairs (default: @=src)
//   - CLIENT_LIB_VERSION: value of the skills-client-lib-version header
//   - UPGRADE_IN_PROGRESS: value of the upgrade-in-progress header (default: false)
//   - CORS_ORIGINS: comma-separated allowed origins
//   - RATE_LIMIT_REQUESTS: requests per window, 0 disables (default: 0)
//   - RATE_LIMIT_WINDOW (default: 1m)
//   - SHUTDOWN_TIMEOUT (default: 10s)
//   - METRICS_PATH (default: /metrics)
type DevServerConfig struct {
	Host              string            `koanf:"host" validate:"required"`
	Port              int               `koanf:"port" validate:"gte=1,lte=65535"`
	Proxy             string            `koanf:"proxy"`
	StaticDir         string            `koanf:"static_dir"`
	Aliases           map[string]string `koanf:"aliases"`
	ClientLibVersion  string            `koanf:"client_lib_version"`
	UpgradeInProgress bool              `koanf:"upgrade_in_progress"`
	CORSOrigins       []string          `koanf:"cors_origins"`
	RateLimitRequests int               `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration     `koanf:"rate_limit_window"`
	ShutdownTimeout   time.Duration     `koanf:"shutdown_timeout" validate:"gte=0"`
	MetricsPath       string            `koanf:"metrics_path"`
}

// Addr returns the host:port listen address.
func (d *DevServerConfig) Addr() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// URL returns the address browsers use to reach the dev server.
func (d *DevServerConfig) URL() string {
	return fmt.Sprintf("http://%s", d.Addr())
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
