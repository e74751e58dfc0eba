// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// printJSON writes payload indented. Anything that is not valid JSON is
// written as-is.
func printJSON(w io.Writer, payload json.RawMessage) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		_, err := fmt.Fprintln(w, "null")
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		buf.Reset()
		buf.Write(payload)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
