// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tomtom215/skillsdisplay/internal/logging"
	"github.com/tomtom215/skillsdisplay/internal/metrics"
)

// Response headers the skills backend adds to every response.
const (
	HeaderClientLibVersion  = "skills-client-lib-version"
	HeaderUpgradeInProgress = "upgrade-in-progress"
)

// observeServerHeaders logs the backend's advertised client library version
// and warns while a database upgrade is in progress. Nothing is retained.
func observeServerHeaders(ctx context.Context, h http.Header) {
	if version := h.Get(HeaderClientLibVersion); version != "" {
		logging.Ctx(ctx).Debug().Str("client_lib_version", version).Msg("Skills API client library version")
	}

	if upgrading, err := strconv.ParseBool(h.Get(HeaderUpgradeInProgress)); err == nil && upgrading {
		metrics.ClientUpgradeInProgress.Inc()
		logging.Ctx(ctx).Warn().Msg("Skills API reports an upgrade in progress")
	}
}
