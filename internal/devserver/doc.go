// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

/*
Package devserver is the local development server for the skills display client.

It binds to dev_server.host:dev_server.port (localhost:8082 by default),
serves the static directory, mounts each alias directory under its own
prefix (the default alias "@" serves src/ at /@/), and reverse-proxies every
request that no file answers to the skills backend (http://localhost:8080 by
default).

Middleware, outermost first:

	RequestID -> Recoverer -> PrometheusMetrics -> ClientLibVersion -> CORS -> rate limit

CORS and rate limiting are only installed when configured. Client library
headers coming back from the backend are replaced by the dev server's own,
and so are its Access-Control headers when the dev server handles CORS.

The server runs as a suture service through services.HTTPServerService:

	srv, _ := devserver.New(cfg.DevServer)
	tree.AddAPIService(services.NewHTTPServerService(srv.HTTPServer(), cfg.DevServer.ShutdownTimeout))
*/
package devserver
