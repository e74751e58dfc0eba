// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/skillsdisplay/internal/apiclient"
)

// ExposeHeadersHeader is the CORS header listing response headers a browser
// client may read.
const ExposeHeadersHeader = "Access-Control-Expose-Headers"

// ExposedHeaders are the headers ClientLibVersion lists in ExposeHeadersHeader.
var ExposedHeaders = []string{apiclient.HeaderClientLibVersion, apiclient.HeaderUpgradeInProgress}

// ClientLibVersion adds the headers the skills backend puts on every
// response: the client library version it expects, whether an upgrade is in
// progress, and an Access-Control-Expose-Headers entry so browser clients on
// another origin can read both.
func ClientLibVersion(version string, upgradeInProgress func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			upgrading := upgradeInProgress != nil && upgradeInProgress()

			h := w.Header()
			h.Set(apiclient.HeaderClientLibVersion, version)
			h.Set(apiclient.HeaderUpgradeInProgress, strconv.FormatBool(upgrading))
			h.Add(ExposeHeadersHeader, strings.Join(ExposedHeaders, ", "))

			next.ServeHTTP(w, r)
		})
	}
}
