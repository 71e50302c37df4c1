package mapembed

import (
	"io/fs"
	"net/http"

	mapgen "github.com/goliatone/go-mapgen"
	"github.com/goliatone/go-mapgen/pkg/orchestrator"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	MapsPath        string
	AssetsPath      string
	RuntimePath     string
	RendererParam   string
	LocaleParam     string
	ThemeParam      string
	VariantParam    string
	DefaultRenderer string
	// OmitAssets renders fragments without asset tags; hosts that mount
	// several maps per page include the stylesheet and runtime once
	// themselves.
	OmitAssets bool
	// CacheMaxAge is the max-age in seconds for asset responses. Zero
	// disables the Cache-Control header.
	CacheMaxAge int
	Guard       GuardFunc

	Generator *orchestrator.Orchestrator
	AssetsFS  fs.FS
	RuntimeFS fs.FS
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		MapsPath:      "/maps",
		AssetsPath:    "/assets",
		RuntimePath:   "/runtime",
		RendererParam: "renderer",
		LocaleParam:   "locale",
		ThemeParam:    "theme",
		VariantParam:  "variant",
		CacheMaxAge:   3600,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.MapsPath == "" {
		opts.MapsPath = "/maps"
	}
	if opts.AssetsPath == "" {
		opts.AssetsPath = "/assets"
	}
	if opts.RuntimePath == "" {
		opts.RuntimePath = "/runtime"
	}
	if opts.RendererParam == "" {
		opts.RendererParam = "renderer"
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = "locale"
	}
	if opts.ThemeParam == "" {
		opts.ThemeParam = "theme"
	}
	if opts.VariantParam == "" {
		opts.VariantParam = "variant"
	}
	if opts.CacheMaxAge < 0 {
		opts.CacheMaxAge = 0
	}
	return opts
}

func WithMapsPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MapsPath = path
	}
}

func WithAssetsPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AssetsPath = path
	}
}

func WithRuntimePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RuntimePath = path
	}
}

func WithDefaultRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultRenderer = name
	}
}

func WithOmitAssets(omit bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OmitAssets = omit
	}
}

func WithCacheMaxAge(seconds int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CacheMaxAge = seconds
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithGenerator injects the orchestrator used to render fragments. When
// omitted, a default pipeline (leaflet renderer, embedded sample definitions)
// is constructed lazily.
func WithGenerator(generator *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Generator = generator
	}
}

func WithAssetsFS(fsys fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AssetsFS = fsys
	}
}

func WithRuntimeFS(fsys fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RuntimeFS = fsys
	}
}

func (o Options) generator() *orchestrator.Orchestrator {
	if o.Generator != nil {
		return o.Generator
	}
	return orchestrator.New()
}

func (o Options) assetsFS() fs.FS {
	if o.AssetsFS != nil {
		return o.AssetsFS
	}
	return leaflet.AssetsFS()
}

func (o Options) runtimeFS() fs.FS {
	if o.RuntimeFS != nil {
		return o.RuntimeFS
	}
	return mapgen.RuntimeAssetsFS()
}
