package mapembed

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/orchestrator"
	"github.com/goliatone/go-mapgen/pkg/render"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// MapHandler builds the fragment handler with default options plus any
// overrides. The handler expects the map id as the path segment following
// pathPrefix, e.g. "/embed/maps/negocios".
func MapHandler(pathPrefix, assetURLPrefix string, fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return mapHandlerWithOptions(pathPrefix, assetURLPrefix, opts)
}

func mapHandlerWithOptions(pathPrefix, assetURLPrefix string, opts Options) http.Handler {
	generator := opts.generator()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		mapID := strings.Trim(strings.TrimPrefix(r.URL.Path, pathPrefix), "/")
		if mapID == "" || strings.Contains(mapID, "/") {
			http.NotFound(w, r)
			return
		}

		query := r.URL.Query()
		rendererName := query.Get(opts.RendererParam)
		if rendererName == "" {
			rendererName = opts.DefaultRenderer
		}

		result, err := generator.Generate(r.Context(), orchestrator.Request{
			MapID:        mapID,
			Renderer:     rendererName,
			Locale:       query.Get(opts.LocaleParam),
			ThemeName:    query.Get(opts.ThemeParam),
			ThemeVariant: query.Get(opts.VariantParam),
			RenderOptions: render.RenderOptions{
				AssetURLPrefix: assetURLPrefix,
				OmitAssets:     opts.OmitAssets,
			},
		})
		if err != nil {
			if errors.Is(err, orchestrator.ErrMapNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(result.HTML)
	})
}

// assetHandlerWithOptions serves files from fsys below pathPrefix, applying
// the guard and cache policy.
func assetHandlerWithOptions(pathPrefix string, fsys fs.FS, opts Options) http.Handler {
	files := http.StripPrefix(pathPrefix, http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		if opts.CacheMaxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", opts.CacheMaxAge))
		}
		files.ServeHTTP(w, r)
	})
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
