// Package maplibre renders map widgets as self-contained HTML pages driven
// by MapLibre GL. It targets kiosk and preview flows where the map is the
// whole document, while the leaflet renderer covers embeddable fragments.
package maplibre

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
	templateName = "templates/page.tmpl"

	defaultVendorScript     = "https://unpkg.com/maplibre-gl@3.6.2/dist/maplibre-gl.js"
	defaultVendorStylesheet = "https://unpkg.com/maplibre-gl@3.6.2/dist/maplibre-gl.css"
	defaultAppScript        = "assets/mapgen-maplibre.js"
	defaultStylesheet       = "assets/mapgen-maplibre.css"

	defaultPageTitle = "Mapa"
	defaultPageLang  = "es"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	assetsFS         fs.FS
	assetPaths       assetPaths
	assetURLPrefix   string
	icons            *icons.Registry
	pageTitle        string
	pageLang         string
}

type assetPaths struct {
	vendorScript     string
	vendorStylesheet string
	appScript        string
	stylesheet       string
}

var defaultAssetPaths = assetPaths{
	vendorScript:     defaultVendorScript,
	vendorStylesheet: defaultVendorStylesheet,
	appScript:        defaultAppScript,
	stylesheet:       defaultStylesheet,
}

// AssetPaths describes the URLs emitted by the HTML template. Custom bundles
// should set all fields even when overriding a single path.
type AssetPaths struct {
	VendorScript     string
	VendorStylesheet string
	AppScript        string
	Stylesheet       string
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

// WithAssetsFS overrides the embedded asset bundle (app script, styles).
func WithAssetsFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.assetsFS = files
		}
	}
}

// WithAssetsDir loads assets from a directory on disk.
func WithAssetsDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.assetsFS = os.DirFS(path)
	}
}

// WithAssetPaths customises the paths injected into the rendered HTML.
func WithAssetPaths(paths AssetPaths) Option {
	return func(cfg *config) {
		cfg.assetPaths = normalizeAssetPaths(paths)
	}
}

// WithAssetURLPrefix prefixes emitted module asset paths (e.g. "/static/mapgen").
func WithAssetURLPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetURLPrefix = prefix
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

// WithPageTitle sets the document title.
func WithPageTitle(title string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(title) != "" {
			cfg.pageTitle = title
		}
	}
}

// WithPageLang sets the document language attribute.
func WithPageLang(lang string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(lang) != "" {
			cfg.pageLang = lang
		}
	}
}

// Renderer turns picker and public map widgets into MapLibre pages.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	assetsFS       fs.FS
	assetPaths     assetPaths
	assetURLPrefix string
	icons          *icons.Registry
	pageTitle      string
	pageLang       string
}

// New constructs a MapLibre renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		assetsFS:   AssetsFS(),
		assetPaths: defaultAssetPaths,
		pageTitle:  defaultPageTitle,
		pageLang:   defaultPageLang,
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
	if cfg.assetsFS == nil {
		cfg.assetsFS = AssetsFS()
	}
	if err := ensureAssetPaths(cfg.assetPaths); err != nil {
		return nil, err
	}
	if err := ensureAssets(cfg.assetsFS, cfg.assetPaths); err != nil {
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
			return nil, fmt.Errorf("maplibre renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}

	return &Renderer{
		templates:      templateRenderer,
		assetsFS:       cfg.assetsFS,
		assetPaths:     cfg.assetPaths,
		assetURLPrefix: cfg.assetURLPrefix,
		icons:          cfg.icons,
		pageTitle:      cfg.pageTitle,
		pageLang:       cfg.pageLang,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "maplibre"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML page for a picker or public map widget.
func (r *Renderer) Render(_ context.Context, widget mapwidget.Widget, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("maplibre renderer: template renderer is nil")
	}

	var cfg bootstrapConfig
	switch w := widget.(type) {
	case *mapwidget.Picker:
		cfg = pickerPayload(w)
	case *mapwidget.PublicMap:
		cfg = publicPayload(w, r.icons)
	default:
		return nil, fmt.Errorf("maplibre renderer: unsupported widget %T", widget)
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("maplibre renderer: marshal map config: %w", err)
	}

	lang := r.pageLang
	if locale := strings.TrimSpace(options.Locale); locale != "" {
		lang = locale
	}

	prefix := r.assetURLPrefix
	if options.AssetURLPrefix != "" {
		prefix = options.AssetURLPrefix
	}

	data := map[string]any{
		"container_id": cfg.Container,
		"kind":         cfg.Kind,
		"config_json":  string(payload),
		"title":        r.pageTitle,
		"lang":         lang,
		"assets": map[string]any{
			"vendorScript":     r.assetPaths.vendorScript,
			"vendorStylesheet": r.assetPaths.vendorStylesheet,
			"appScript":        expandAssetURL(prefix, r.assetPaths.appScript),
			"stylesheet":       expandAssetURL(prefix, r.assetPaths.stylesheet),
		},
		"theme": buildThemeContext(options.Theme),
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("maplibre renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

func buildThemeContext(cfg *render.ThemeConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	class := ""
	if name := strings.TrimSpace(cfg.Theme); name != "" {
		class = "mapgen-theme-" + name
		if variant := strings.TrimSpace(cfg.Variant); variant != "" {
			class += "-" + variant
		}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"class_name":     class,
		"css_vars_style": cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
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
		return fmt.Errorf("maplibre renderer: template file system is nil")
	}
	if name == "" {
		return fmt.Errorf("maplibre renderer: template name required")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("maplibre renderer: template %q not found: %w", name, err)
	}
	return nil
}

func ensureAssets(store fs.FS, paths assetPaths) error {
	required := []struct {
		label string
		path  string
	}{
		{label: "app script", path: paths.appScript},
		{label: "stylesheet", path: paths.stylesheet},
	}
	for _, item := range required {
		if isExternalURL(item.path) {
			continue
		}
		if _, err := fs.Stat(store, item.path); err != nil {
			return fmt.Errorf("maplibre renderer: %s %q not found: %w", item.label, item.path, err)
		}
	}
	return nil
}

func ensureAssetPaths(paths assetPaths) error {
	if paths.vendorScript == "" {
		return fmt.Errorf("maplibre renderer: vendor script path required")
	}
	if paths.vendorStylesheet == "" {
		return fmt.Errorf("maplibre renderer: vendor stylesheet path required")
	}
	if paths.appScript == "" {
		return fmt.Errorf("maplibre renderer: app script path required")
	}
	if paths.stylesheet == "" {
		return fmt.Errorf("maplibre renderer: stylesheet path required")
	}
	return nil
}

func normalizeAssetPaths(paths AssetPaths) assetPaths {
	result := defaultAssetPaths
	if paths.VendorScript != "" {
		result.vendorScript = paths.VendorScript
	}
	if paths.VendorStylesheet != "" {
		result.vendorStylesheet = paths.VendorStylesheet
	}
	if paths.AppScript != "" {
		result.appScript = paths.AppScript
	}
	if paths.Stylesheet != "" {
		result.stylesheet = paths.Stylesheet
	}
	return result
}

func isExternalURL(name string) bool {
	return strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "//")
}

func expandAssetURL(prefix, name string) string {
	if name == "" {
		return ""
	}
	if isExternalURL(name) || strings.HasPrefix(name, "/") {
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
