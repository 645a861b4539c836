// Package web holds the embedded templates and static assets for the site.
package web

import "embed"

// TemplateFS contains all HTML templates.
//
//go:embed templates
var TemplateFS embed.FS

// StaticFS contains CSS, the theme script, and other static assets.
//
//go:embed static
var StaticFS embed.FS
