// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

/*
Package middleware provides the HTTP middleware used by the development server.

Key Components:

  - RequestID: reuses or generates X-Request-ID and stores it for logging
  - PrometheusMetrics: request count, duration and in-flight gauge by chi route
  - Compression: gzip for locally served assets
  - ClientLibVersion: the skills-client-lib-version and upgrade-in-progress
    headers the skills backend adds to every response

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.ClientLibVersion(cfg.ClientLibVersion, upgrading))
*/
package middleware
