// Package web bundles the single-page client served at the root path.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
