// Package bookshelf provides embedded assets for production builds.
package bookshelf

import "embed"

// TemplateFS holds the page shell templates.
//
//go:embed web/templates
var TemplateFS embed.FS
