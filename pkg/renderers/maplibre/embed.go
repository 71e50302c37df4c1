package maplibre

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// the default MapLibre page layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded app script and stylesheet to copy into
// downstream distributions. The MapLibre library itself loads from its CDN.
func AssetsFS() fs.FS {
	return embeddedAssets
}
