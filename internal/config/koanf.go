// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"skills.yaml",
	"skills.yml",
	"/etc/skillsdisplay/config.yaml",
	"/etc/skillsdisplay/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
// The dev server values mirror the front-end tooling this replaces:
// localhost:8082 proxying to a backend on localhost:8080, "@" aliased to src.
func defaultConfig() *Config {
	return &Config{
		Client: ClientConfig{
			ServiceURL: "",
			ProjectID:  "",
			UserID:     "",
			Token:      "",
			Timeout:    0, // no timeout; callers cancel through the context
		},
		DevServer: DevServerConfig{
			Host:              "localhost",
			Port:              8082,
			Proxy:             "http://localhost:8080",
			StaticDir:         "public",
			Aliases:           map[string]string{"@": "src"},
			ClientLibVersion:  "",
			UpgradeInProgress: false,
			CORSOrigins:       []string{},
			RateLimitRequests: 0,
			RateLimitWindow:   time.Minute,
			ShutdownTimeout:   10 * time.Second,
			MetricsPath:       "/metrics",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in values
//  2. Config File: optional YAML file
//  3. Environment Variables: highest priority
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// SKILLS_SERVICE_URL -> client.service_url, DEV_SERVER_PORT -> dev_server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processMapFields(k); err != nil {
		return nil, fmt.Errorf("failed to process map fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"dev_server.cors_origins",
}

// mapConfigPaths are parsed from comma-separated key=value strings when set via env.
var mapConfigPaths = []string{
	"dev_server.aliases",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := splitList(strVal)
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// processMapFields replaces (not merges) the default map when the env supplies one,
// so DEV_SERVER_ALIASES=img=assets drops the default "@" alias.
func processMapFields(k *koanf.Koanf) error {
	for _, path := range mapConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		m := make(map[string]interface{})
		for _, pair := range splitList(strVal) {
			key, value, found := strings.Cut(pair, "=")
			key = strings.TrimSpace(key)
			if !found || key == "" {
				return fmt.Errorf("%s: expected key=value, got %q", path, pair)
			}
			m[key] = strings.TrimSpace(value)
		}

		k.Delete(path)
		if len(m) == 0 {
			continue
		}
		if err := k.Set(path, m); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"skills_service_url": "client.service_url",
	"skills_project_id":  "client.project_id",
	"skills_user_id":     "client.user_id",
	"skills_token":       "client.token",
	"skills_timeout":     "client.timeout",

	"dev_server_host":       "dev_server.host",
	"dev_server_port":       "dev_server.port",
	"dev_server_proxy":      "dev_server.proxy",
	"dev_server_static_dir": "dev_server.static_dir",
	"dev_server_aliases":    "dev_server.aliases",
	"client_lib_version":    "dev_server.client_lib_version",
	"upgrade_in_progress":   "dev_server.upgrade_in_progress",
	"cors_origins":          "dev_server.cors_origins",
	"rate_limit_requests":   "dev_server.rate_limit_requests",
	"rate_limit_window":     "dev_server.rate_limit_window",
	"shutdown_timeout":      "dev_server.shutdown_timeout",
	"metrics_path":          "dev_server.metrics_path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Returning "" skips the variable, which keeps unrelated environment out of the config.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
