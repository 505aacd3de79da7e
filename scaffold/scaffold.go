// Package scaffold provides the embedded index templates used by newpost.
package scaffold

import "embed"

// Templates contains one index template per layout, named <layout>.tmpl.
// Files use Go text/template syntax.
//
//go:embed all:templates
var Templates embed.FS
