package leaflet

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the widget stylesheet inside AssetsFS.
const StylesheetName = "mapgen-leaflet.css"

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in fragment markup out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet bundle so callers can serve it
// over HTTP or copy it into their own asset pipeline. The browser runtime
// scripts live in the module root's RuntimeAssetsFS.
func AssetsFS() fs.FS {
	if sub, err := fs.Sub(embeddedAssets, "assets"); err == nil {
		return sub
	}
	return embeddedAssets
}

func defaultStylesheetContents() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
