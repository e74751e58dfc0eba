// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator is built on first use and shared; it caches struct
// metadata, so it must not be recreated per call.
//
//	type Setting struct {
//	    Setting string `json:"setting" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&s); verr != nil {
//	    return verr // "setting is required"
//	}
//
// Fields are reported by their json tag, falling back to the koanf tag and then
// the Go field name.
package validation
