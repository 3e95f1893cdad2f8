// Package web embeds the admin console so the binary ships self-contained.
package web

import "embed"

//go:embed admin/index.html
var FS embed.FS
