package templates

import "embed"

// FS holds the layouts, partials and page templates
//
//go:embed layouts/*.html partials/*.html pages/*.html
var FS embed.FS
