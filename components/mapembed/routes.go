package mapembed

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes lists the patterns registered for one component mount.
type Routes struct {
	Maps    string
	Assets  string
	Runtime string
}

// MountPath returns the fragment mount path for the component under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.MapsPath) + "/"
}

// RegisterRoutes registers the fragment and asset handlers under basePath on
// mux and returns the registered patterns.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers handlers using a pre-built Options
// value. Callers are expected to pass an Options value produced by NewOptions
// (or equivalent) so defaults apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Routes, error) {
	if mux == nil {
		return Routes{}, fmt.Errorf("mapembed: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	routes := Routes{
		Maps:    mountPath(basePath, opts.MapsPath) + "/",
		Assets:  mountPath(basePath, opts.AssetsPath) + "/",
		Runtime: mountPath(basePath, opts.RuntimePath) + "/",
	}

	// Fragments point their asset URLs back at this mount so the relative
	// renderer defaults resolve regardless of the page URL.
	assetURLPrefix := normalizeBase(basePath)

	mux.Handle(routes.Maps, mapHandlerWithOptions(routes.Maps, assetURLPrefix, opts))
	mux.Handle(routes.Assets, assetHandlerWithOptions(routes.Assets, opts.assetsFS(), opts))
	mux.Handle(routes.Runtime, assetHandlerWithOptions(routes.Runtime, opts.runtimeFS(), opts))

	return routes, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}
	routePath = strings.TrimRight(routePath, "/")

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}

func normalizeBase(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/")
}
