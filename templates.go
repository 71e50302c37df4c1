package mapgen

import (
	"io/fs"

	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet"
)

// EmbeddedTemplates returns the template bundle behind the default leaflet
// renderer. Pair it with leaflet.WithTemplatesFS to layer overrides on top of
// the stock markup instead of maintaining a full copy.
func EmbeddedTemplates() fs.FS {
	return leaflet.TemplatesFS()
}
