package mapgen

import (
	"io/fs"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
)

// LoadDefinitions parses map definition documents from fsys while keeping the
// concrete loader hidden from consumers.
func LoadDefinitions(fsys fs.FS) (*mapdata.Store, error) {
	return mapdata.LoadFS(fsys)
}

// EmbeddedDefinitions returns the bundled sample dataset. Callers may pass it
// to LoadDefinitions or WithDefinitionsFS to serve the demo maps.
func EmbeddedDefinitions() fs.FS {
	return mapdata.EmbeddedFS()
}
