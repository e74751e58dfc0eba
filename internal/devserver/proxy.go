// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package devserver

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/tomtom215/skillsdisplay/internal/apiclient"
	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/metrics"
	"github.com/tomtom215/skillsdisplay/internal/middleware"
)

// ownedHeaders are set by the dev server itself and are dropped from backend
// responses so the browser sees a single value.
var ownedHeaders = []string{
	apiclient.HeaderClientLibVersion,
	apiclient.HeaderUpgradeInProgress,
}

// newProxy forwards to target. When ownsCORS is set every Access-Control
// header from the backend is dropped. Otherwise the backend's exposed headers
// are merged with the client library ones.
func newProxy(target *url.URL, ownsCORS bool) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ModifyResponse: func(resp *http.Response) error {
			stripOwnedHeaders(resp.Header, ownsCORS)
			if !ownsCORS {
				mergeExposedHeaders(resp.Header)
			}
			return nil
		},
		ErrorHandler: proxyError,
	}
}

func stripOwnedHeaders(h http.Header, ownsCORS bool) {
	for _, key := range ownedHeaders {
		h.Del(key)
	}
	if !ownsCORS {
		return
	}
	for key := range h {
		if strings.HasPrefix(key, "Access-Control-") {
			delete(h, key)
		}
	}
}

// mergeExposedHeaders rewrites the backend's Access-Control-Expose-Headers
// into one value: the client library headers first, then every other name the
// backend listed, without duplicates.
func mergeExposedHeaders(h http.Header) {
	names := append([]string(nil), middleware.ExposedHeaders...)
	for _, value := range h.Values(middleware.ExposeHeadersHeader) {
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if name != "" && !containsFold(names, name) {
				names = append(names, name)
			}
		}
	}
	h.Set(middleware.ExposeHeadersHeader, strings.Join(names, ", "))
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func proxyError(w http.ResponseWriter, r *http.Request, err error) {
	metrics.DevServerProxyErrors.Inc()
	logging.Ctx(r.Context()).Warn().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Backend proxy request failed")
	w.Header().Set(middleware.ExposeHeadersHeader, strings.Join(middleware.ExposedHeaders, ", "))
	w.WriteHeader(http.StatusBadGateway)
}
