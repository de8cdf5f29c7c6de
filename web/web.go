// Package web embeds the dashboard templates so the binary ships
// self-contained.
package web

import "embed"

//go:embed templates
var Templates embed.FS
