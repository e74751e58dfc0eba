// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

/*
Package supervisor runs the development server under suture v4.

	RootSupervisor ("skillsdisplay")
	└── ServingSupervisor ("serving-layer")
	    └── HTTPServerService ("devserver")

A crashed service is restarted with suture's backoff. A server that cannot
bind its address stops the tree, which ends the process. Supervisor events are logged through sutureslog and
the zerolog-backed slog adapter from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService("devserver", httpServer, cfg.DevServer.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
