// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package devserver

import (
	"net/http"
	"path"

	"github.com/tomtom215/skillsdisplay/internal/middleware"
)

// staticDir serves files from a directory and tells the router whether a
// request has a file to answer it.
type staticDir struct {
	fs      http.FileSystem
	handler http.Handler
}

func newStaticDir(dir string) *staticDir {
	fs := http.Dir(dir)
	return &staticDir{
		fs:      fs,
		handler: middleware.Compression(http.FileServer(fs)),
	}
}

// exists reports whether urlPath names a file, or a directory with an
// index.html, inside the static directory.
func (d *staticDir) exists(urlPath string) bool {
	name := path.Clean("/" + urlPath)

	f, err := d.fs.Open(name)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := d.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	_ = index.Close()
	return true
}
