// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package apiclient

import (
	"errors"
	"fmt"
	"io"
)

// maxErrorBodySize caps how much of a failed response is kept on the error.
const maxErrorBodySize = 4096

// ResponseError is returned when the skills API answers with a non-2xx status.
// It carries the response so callers can present or inspect it; the client
// never interprets it.
type ResponseError struct {
	Operation  string
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s %s returned status %d: %s", e.Operation, e.Method, e.URL, e.StatusCode, string(e.Body))
}

// StatusCode returns the HTTP status of a *ResponseError anywhere in err's
// chain, or 0 if there is none.
func StatusCode(err error) int {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
