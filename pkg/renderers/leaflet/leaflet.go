// Package leaflet renders map widgets as embeddable HTML fragments backed by
// the Leaflet browser library. Each fragment carries a container element and
// a JSON config script the browser runtime reads to initialise the map; the
// Go side resolves views, popups and icons so the runtime only applies them.
package leaflet

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/render"
	rendertemplate "github.com/goliatone/go-mapgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-mapgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet/icons"
)

const (
	templateName = "templates/map.tmpl"

	defaultStylesheetPath    = "assets/mapgen-leaflet.css"
	defaultRuntimeScriptPath = "runtime/mapgen-leaflet.js"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	icons            *icons.Registry
	assetPaths       assetPaths
	vendorAssets     VendorAssets
	assetURLPrefix   string
	inlineStyles     bool
}

type assetPaths struct {
	stylesheet    string
	runtimeScript string
}

var defaultAssetPaths = assetPaths{
	stylesheet:    defaultStylesheetPath,
	runtimeScript: defaultRuntimeScriptPath,
}

// AssetPaths describes the module asset URLs emitted by the fragment
// template. Custom bundles should set all fields even when overriding a
// single path.
type AssetPaths struct {
	Stylesheet    string
	RuntimeScript string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithIconRegistry overrides the default marker icon registry.
func WithIconRegistry(registry *icons.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.icons = registry
		}
	}
}

// WithAssetPaths customises the relative paths injected into the fragment.
func WithAssetPaths(paths AssetPaths) Option {
	return func(cfg *config) {
		cfg.assetPaths = normalizeAssetPaths(paths)
	}
}

// WithVendorAssets points the Leaflet library tags at a custom distribution.
func WithVendorAssets(assets VendorAssets) Option {
	return func(cfg *config) {
		cfg.vendorAssets = normalizeVendorAssets(assets)
	}
}

// WithAssetURLPrefix prefixes emitted module asset paths (e.g. "/static/mapgen").
func WithAssetURLPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetURLPrefix = prefix
	}
}

// WithInlineStyles embeds the widget stylesheet in the fragment instead of
// emitting a link tag, so single-page setups need no asset mount.
func WithInlineStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// Renderer turns picker and public map widgets into Leaflet fragments.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	icons          *icons.Registry
	assetPaths     assetPaths
	vendorAssets   VendorAssets
	assetURLPrefix string
	inlineStyles   bool
}

// New constructs the leaflet renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		assetPaths:   defaultAssetPaths,
		vendorAssets: defaultVendorAssets(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if err := ensureTemplate(cfg.templateFS, templateName); err != nil {
		return nil, err
	}
	if err := ensureAssetPaths(cfg.assetPaths); err != nil {
		return nil, err
	}
	if cfg.icons == nil {
		cfg.icons = icons.NewDefaultRegistry()
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("leaflet renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}

	return &Renderer{
		templates:      templateRenderer,
		icons:          cfg.icons,
		assetPaths:     cfg.assetPaths,
		vendorAssets:   cfg.vendorAssets,
		assetURLPrefix: cfg.assetURLPrefix,
		inlineStyles:   cfg.inlineStyles,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "leaflet"
}

// ContentType returns the MIME type for generated fragments.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the fragment for a picker or public map widget.
func (r *Renderer) Render(_ context.Context, widget mapwidget.Widget, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("leaflet renderer: template renderer is nil")
	}

	var cfg bootstrapConfig
	switch w := widget.(type) {
	case *mapwidget.Picker:
		cfg = pickerPayload(w)
	case *mapwidget.PublicMap:
		cfg = publicPayload(w, r.icons)
	default:
		return nil, fmt.Errorf("leaflet renderer: unsupported widget %T", widget)
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("leaflet renderer: marshal map config: %w", err)
	}

	urls := r.assetURLs(options.AssetURLPrefix)
	inlineCSS := ""
	if r.inlineStyles {
		inlineCSS = defaultStylesheetContents()
	}

	data := map[string]any{
		"container_id": cfg.Container,
		"kind":         cfg.Kind,
		"config_json":  string(payload),
		"omit_assets":  options.OmitAssets,
		"inline_css":   inlineCSS,
		"assets": map[string]any{
			"vendorStylesheet":          r.vendorAssets.StylesheetURL,
			"vendorStylesheetIntegrity": r.vendorAssets.StylesheetIntegrity,
			"vendorScript":              r.vendorAssets.ScriptURL,
			"vendorScriptIntegrity":     r.vendorAssets.ScriptIntegrity,
			"stylesheet":                urls.stylesheet,
			"runtimeScript":             urls.runtimeScript,
		},
		"theme": buildThemeContext(cfg.Container, options.Theme),
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("leaflet renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

func (r *Renderer) assetURLs(requestPrefix string) assetPaths {
	prefix := r.assetURLPrefix
	if strings.TrimSpace(requestPrefix) != "" {
		prefix = requestPrefix
	}
	return assetPaths{
		stylesheet:    expandAssetURL(prefix, r.assetPaths.stylesheet),
		runtimeScript: expandAssetURL(prefix, r.assetPaths.runtimeScript),
	}
}

func buildThemeContext(containerID string, cfg *render.ThemeConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"class_name":     themeClassName(cfg),
		"css_vars_style": cssVarsStyle(containerID, cfg.CSSVars),
	}
}

func themeClassName(cfg *render.ThemeConfig) string {
	name := strings.TrimSpace(cfg.Theme)
	if name == "" {
		return ""
	}
	class := "mapgen-theme-" + name
	if variant := strings.TrimSpace(cfg.Variant); variant != "" {
		class += "-" + variant
	}
	return class
}

func cssVarsStyle(containerID string, vars map[string]string) string {
	if len(vars) == 0 || containerID == "" {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("#")
	b.WriteString(containerID)
	b.WriteString(" {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func ensureTemplate(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("leaflet renderer: template file system is nil")
	}
	if name == "" {
		return fmt.Errorf("leaflet renderer: template name required")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("leaflet renderer: template %q not found: %w", name, err)
	}
	return nil
}

func ensureAssetPaths(paths assetPaths) error {
	if paths.stylesheet == "" {
		return fmt.Errorf("leaflet renderer: stylesheet path required")
	}
	if paths.runtimeScript == "" {
		return fmt.Errorf("leaflet renderer: runtime script path required")
	}
	return nil
}

func normalizeAssetPaths(paths AssetPaths) assetPaths {
	result := defaultAssetPaths
	if paths.Stylesheet != "" {
		result.stylesheet = paths.Stylesheet
	}
	if paths.RuntimeScript != "" {
		result.runtimeScript = paths.RuntimeScript
	}
	return result
}

func expandAssetURL(prefix, name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "//") ||
		strings.HasPrefix(name, "/") {
		return name
	}
	if prefix == "" {
		return name
	}
	p := strings.TrimRight(prefix, "/")
	n := strings.TrimLeft(name, "/")
	if p == "" {
		return "/" + n
	}
	return p + "/" + n
}
