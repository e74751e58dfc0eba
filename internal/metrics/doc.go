// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

/*
Package metrics provides Prometheus metrics for the skills client and the development server.

All collectors are registered with the default registry through promauto, so
they appear on the dev server's metrics endpoint:

	curl http://localhost:8082/metrics

# Available Metrics

Client:
  - skills_client_requests_total{operation,method,status_code}
  - skills_client_request_duration_seconds{operation,method}
  - skills_client_upgrade_in_progress_responses_total

Development server:
  - devserver_requests_total{method,route,status_code}
  - devserver_request_duration_seconds{method,route}
  - devserver_active_requests
  - devserver_proxy_errors_total

The operation label is the facade method name (e.g. "rank", "pointHistory"),
never the URL, so label cardinality stays bounded.
*/
package metrics
