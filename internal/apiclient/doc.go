// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package apiclient is the request transport shared by the skills and settings facades.
//
// Every call issues exactly one HTTP request. Non-2xx responses come back as
// *ResponseError; transport and decode failures are wrapped with %w. There is
// no retry, no caching and no default timeout.
//
//	api, err := apiclient.New(apiclient.Options{})
//	api.SetToken(token)
//
//	var summary json.RawMessage
//	err = api.GetJSON(ctx, "summary", u, url.Values{"userId": {""}}, &summary)
//
// The bearer token belongs to the Client, not to the process: two Clients can
// act for two users at once.
package apiclient
