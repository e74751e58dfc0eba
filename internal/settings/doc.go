// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package settings provides the project settings facade:
// GET and POST on {serviceURL}/admin/projects/{projectID}/settings/{name}.
package settings
