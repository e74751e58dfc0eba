// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package devserver

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/skillsdisplay/internal/config"
	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/middleware"
)

// Server is the local development server for the skills display client.
//
// Requests are answered in this order:
//   - the metrics endpoint
//   - alias directories mounted at /<alias>/
//   - files under the static directory (GET and HEAD only)
//   - the backend proxy
//
// Every response carries the client library version headers.
type Server struct {
	cfg       config.DevServerConfig
	proxy     *httputil.ReverseProxy
	static    *staticDir
	upgrading atomic.Bool
	handler   http.Handler
}

// New builds a Server from cfg. The configuration is expected to have been
// validated by config.Load.
func New(cfg config.DevServerConfig) (*Server, error) {
	s := &Server{cfg: cfg}
	s.upgrading.Store(cfg.UpgradeInProgress)

	if cfg.Proxy != "" {
		target, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", cfg.Proxy, err)
		}
		s.proxy = newProxy(target, len(cfg.CORSOrigins) > 0)
	}

	if cfg.StaticDir != "" {
		s.static = newStaticDir(cfg.StaticDir)
		warnMissingDir("static", cfg.StaticDir)
	}

	s.handler = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// SetUpgradeInProgress changes the upgrade-in-progress header on later responses.
func (s *Server) SetUpgradeInProgress(upgrading bool) {
	s.upgrading.Store(upgrading)
}

// UpgradeInProgress reports the current upgrade-in-progress value.
func (s *Server) UpgradeInProgress() bool {
	return s.upgrading.Load()
}

// HTTPServer returns an *http.Server bound to the configured address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.ClientLibVersion(s.cfg.ClientLibVersion, s.UpgradeInProgress))
	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if s.cfg.RateLimitRequests > 0 {
		r.Use(httprate.LimitByIP(s.cfg.RateLimitRequests, s.cfg.RateLimitWindow))
	}

	if s.cfg.MetricsPath != "" {
		r.Handle(s.cfg.MetricsPath, promhttp.Handler())
	}

	for _, alias := range sortedKeys(s.cfg.Aliases) {
		dir := s.cfg.Aliases[alias]
		warnMissingDir("alias "+alias, dir)
		prefix := "/" + alias
		r.With(middleware.Compression).Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	}

	r.HandleFunc("/*", s.serveStaticOrProxy)
	return r
}

func (s *Server) serveStaticOrProxy(w http.ResponseWriter, r *http.Request) {
	if s.static != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) && s.static.exists(r.URL.Path) {
		s.static.handler.ServeHTTP(w, r)
		return
	}
	if s.proxy != nil {
		if len(s.cfg.CORSOrigins) == 0 {
			// The proxy writes the merged list from the backend response.
			w.Header().Del(middleware.ExposeHeadersHeader)
		}
		ctx := logging.ContextWithLogger(r.Context(), logging.WithComponent("proxy"))
		s.proxy.ServeHTTP(w, r.WithContext(ctx))
		return
	}
	http.NotFound(w, r)
}

func warnMissingDir(role, dir string) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logging.Warn().Str("role", role).Str("dir", dir).Msg("Dev server directory does not exist")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
