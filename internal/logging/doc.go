// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package logging provides centralized zerolog-based structured logging.
//
// The global logger is usable before Init is called; Init reconfigures it
// from the application's logging section:
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("project", projectID).Msg("Client configured")
//	logging.Ctx(ctx).Debug().Str("url", u).Msg("Request sent")
//
// Ctx attaches the request and correlation IDs carried in the context, so the
// same ID shows up in the client's logs and in the X-Request-ID header it sends.
//
// NewSlogLogger adapts the global logger to log/slog for libraries that only
// accept a *slog.Logger (the supervisor's sutureslog hook).
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
