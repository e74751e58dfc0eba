// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package skills

import (
	"net/url"
	"strings"
)

// API mount points.
const (
	PublicPrefix = "/api/projects"
	AdminPrefix  = "/admin/projects"
)

// segment is one piece of an endpoint path.
//
// A literal segment is written as-is. A value segment is path-escaped.
// An optional segment is a name/value pair that is dropped entirely when the
// value is empty, so no empty path element is ever produced.
type segment struct {
	name     string
	value    string
	hasValue bool
	optional bool
}

func lit(name string) segment {
	return segment{name: name}
}

func val(value string) segment {
	return segment{value: value, hasValue: true}
}

func optional(name, value string) segment {
	return segment{name: name, value: value, hasValue: true, optional: true}
}

// endpoint is {serviceURL}{prefix}/{projectID}.
type endpoint struct {
	serviceURL string
	prefix     string
	projectID  string
}

func prefixFor(userID string) string {
	if userID != "" {
		return AdminPrefix
	}
	return PublicPrefix
}

func (e endpoint) base() string {
	return strings.TrimSuffix(e.serviceURL, "/") + e.prefix + "/" + url.PathEscape(e.projectID)
}

// path joins the segments onto the endpoint base.
func (e endpoint) path(parts ...segment) string {
	var b strings.Builder
	b.WriteString(e.base())
	for _, p := range parts {
		if p.optional && p.value == "" {
			continue
		}
		if p.name != "" {
			b.WriteByte('/')
			b.WriteString(p.name)
		}
		if p.hasValue {
			b.WriteByte('/')
			b.WriteString(url.PathEscape(p.value))
		}
	}
	return b.String()
}
