package docs

import "embed"

// FS contains long-form Markdown docs bundled with the grim binary.
//
//go:embed index.yaml reference
var FS embed.FS
