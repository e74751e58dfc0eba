// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package config loads application configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: $CONFIG_PATH, ./skills.yaml, /etc/skillsdisplay/config.yaml
//  3. Environment variables listed in envMappings
//
// Example config file:
//
//	client:
//	  service_url: http://localhost:8080
//	  project_id: movies
//	dev_server:
//	  port: 8082
//	  proxy: http://localhost:8080
//	  aliases:
//	    "@": src
//	logging:
//	  level: debug
//	  format: console
//
// Struct-level rules (ranges, enums) are declared as validate tags and checked
// by the validation package; URL shape checks live in config_url.go.
package config
