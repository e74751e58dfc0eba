// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService runs an *http.Server: it serves until the supervisor's
// context is canceled, then shuts down gracefully.
//
//	svc := services.NewHTTPServerService("devserver", srv.HTTPServer(), 10*time.Second)
//	tree.AddAPIService(svc)
package services
