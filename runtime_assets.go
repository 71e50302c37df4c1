package mapgen

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js
var runtimeScripts embed.FS

// RuntimeAssetsFS returns the browser-side scripts the renderers reference,
// rooted so the file names in generated script tags (mapgen-leaflet.js and
// friends) resolve directly. Serve it under the prefix you pass through
// render.RenderOptions.AssetURLPrefix:
//
//	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(mapgen.RuntimeAssetsFS())))
func RuntimeAssetsFS() fs.FS {
	if sub, err := fs.Sub(runtimeScripts, "pkg/runtime/assets"); err == nil {
		return sub
	}
	return runtimeScripts
}
