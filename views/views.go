// Package views holds the server-rendered HTML templates, embedded so the
// binary ships as a single file.
package views

import "embed"

//go:embed *.html layouts/*.html
var FS embed.FS
