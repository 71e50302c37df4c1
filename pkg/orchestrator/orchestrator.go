package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/render"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet"
)

const defaultRendererName = "leaflet"

// ErrMapNotFound is returned when a request names a map the store does not
// hold. Callers can map it to a 404.
var ErrMapNotFound = errors.New("orchestrator: map not found")

// Option adjusts the orchestrator during construction.
type Option func(*Orchestrator)

// WithRegistry supplies the registry render targets are resolved from.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithStore injects an already loaded definition store.
func WithStore(store *mapdata.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithDefinitionsFS supplies an fs.FS holding map definition documents. Pass
// nil to disable the embedded sample dataset.
func WithDefinitionsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.definitionsFS = fsys
		o.definitionsSpecified = true
	}
}

// WithDefaultRenderer names the renderer used for requests that leave
// Renderer empty.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTranslator sets the translator applied when requests carry a locale.
func WithTranslator(translator render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = translator
	}
}

// WithMissingTranslationHandler observes translation keys the translator
// could not resolve.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(o *Orchestrator) {
		o.onMissing = handler
	}
}

// WithThemeSelector passes a go-theme selector so theme/variant choices can
// be resolved per request.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeSelection fixes a resolved theme selection for every request that
// does not name a theme itself.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(o *Orchestrator) {
		o.themeSelection = selection
	}
}

// WithDefaultTheme names the theme and variant used when a request omits
// both. Requires a selector.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithTransformers registers hooks that can mutate a definition after lookup
// but before the widget is built.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		if len(transformers) == 0 {
			return
		}
		o.transformers = append(o.transformers, transformers...)
	}
}

// Orchestrator coordinates the pipeline from map definition to rendered
// output. It applies sensible defaults (leaflet renderer, embedded sample
// definitions) while remaining open to dependency injection.
type Orchestrator struct {
	registry             *render.Registry
	store                *mapdata.Store
	definitionsFS        fs.FS
	definitionsSpecified bool
	storeConfigured      bool
	defaultRenderer      string
	translator           render.Translator
	onMissing            render.MissingTranslationHandler
	themeSelector        theme.ThemeSelector
	themeSelection       *theme.Selection
	defaultTheme         string
	defaultVariant       string
	transformers         []Transformer
	setupErr             error
	ready                bool
}

// New builds an Orchestrator from the given options. Dependencies the options
// leave unset fall back to built-ins, so New() alone yields a working
// instance over the embedded sample definitions.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	o.finishSetup()
	return o
}

// Request describes the inputs required to render one map.
type Request struct {
	// MapID selects the definition to render. Optional when Definition is
	// supplied.
	MapID string

	// Definition allows callers to bypass the store when they already hold
	// a definition.
	Definition *mapdata.Definition

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Locale selects the language for popup and control strings. Overrides
	// RenderOptions.Locale when set.
	Locale string

	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Empty values fall back to the orchestrator defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as asset URL
	// prefixes or asset suppression. When omitted, renderers receive the
	// zero-value struct.
	RenderOptions render.RenderOptions
}

// Result is the rendered output plus its MIME type.
type Result struct {
	HTML        []byte
	ContentType string
}

// Generate executes the store lookup, widget build, and render sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.setupErr; err != nil {
		return Result{}, err
	}
	if !o.ready {
		// Zero-value construction skips New; finish the deferred setup here.
		o.finishSetup()
		if err := o.setupErr; err != nil {
			return Result{}, err
		}
	}

	def, err := o.resolveDefinition(req)
	if err != nil {
		return Result{}, err
	}

	if err := o.applyTransformers(ctx, &def); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	opts := req.RenderOptions
	if req.Locale != "" {
		opts.Locale = req.Locale
	}
	if opts.Translator == nil {
		opts.Translator = o.translator
	}
	if opts.OnMissing == nil {
		opts.OnMissing = o.onMissing
	}
	if opts.Theme == nil {
		themeCfg, err := o.themeFor(req)
		if err != nil {
			return Result{}, err
		}
		opts.Theme = themeCfg
	}

	widget := buildWidget(def, opts)

	output, err := renderer.Render(ctx, widget, opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Result{HTML: output, ContentType: renderer.ContentType()}, nil
}

func (o *Orchestrator) resolveDefinition(req Request) (mapdata.Definition, error) {
	if req.Definition != nil {
		return *req.Definition, nil
	}
	if req.MapID == "" {
		return mapdata.Definition{}, errors.New("orchestrator: map id or definition is required")
	}
	if o.store.Empty() {
		return mapdata.Definition{}, errors.New("orchestrator: no map definitions configured")
	}
	def, ok := o.store.Definition(req.MapID)
	if !ok {
		return mapdata.Definition{}, fmt.Errorf("%w: %q", ErrMapNotFound, req.MapID)
	}
	return def, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: nil renderer registry")
	}

	// An explicitly requested renderer must exist; only the implicit default
	// may fall back.
	if name != "" {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return renderer, nil
	}

	if o.defaultRenderer != "" {
		if renderer, err := o.registry.Get(o.defaultRenderer); err == nil {
			return renderer, nil
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: registry has no renderers")
	}
	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) themeFor(req Request) (*render.ThemeConfig, error) {
	name := req.ThemeName
	variant := req.ThemeVariant
	if name == "" {
		name = o.defaultTheme
		if variant == "" {
			variant = o.defaultVariant
		}
	}

	if name == "" {
		if o.themeSelection != nil {
			return render.ThemeFromSelection(o.themeSelection), nil
		}
		return nil, nil
	}

	if o.themeSelector == nil {
		if o.themeSelection != nil {
			return render.ThemeFromSelection(o.themeSelection), nil
		}
		return nil, fmt.Errorf("orchestrator: theme %q requested but no selector configured", name)
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	return render.ThemeFromSelection(selection), nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, def *mapdata.Definition) error {
	if len(o.transformers) == 0 || def == nil {
		return nil
	}
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, def); err != nil {
			return fmt.Errorf("orchestrator: transform definition: %w", err)
		}
	}
	return nil
}

// buildWidget resolves the definition into its widget. Popup labels are
// localized before the public map is built because popup HTML is baked at
// build time.
func buildWidget(def mapdata.Definition, opts render.RenderOptions) mapwidget.Widget {
	if def.Kind == mapwidget.KindPicker {
		return mapwidget.NewPicker(def.PickerOptions())
	}
	options := def.PublicMapOptions()
	options.Labels = render.LocalizePopupLabels(options.Labels, opts)
	return mapwidget.BuildPublicMap(options)
}

// finishSetup fills the gaps the options left behind. Failures are recorded
// rather than returned so New can keep its plain constructor signature;
// Generate surfaces them.
func (o *Orchestrator) finishSetup() {
	if o.ready {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		if renderer, err := leaflet.New(); err != nil {
			o.setupErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureStore()
	o.ready = true
}

func (o *Orchestrator) ensureStore() {
	if o.storeConfigured {
		return
	}
	o.storeConfigured = true

	if o.store != nil {
		return
	}
	if !o.definitionsSpecified && o.definitionsFS == nil {
		o.definitionsFS = mapdata.EmbeddedFS()
	}
	if o.definitionsFS == nil {
		return
	}

	store, err := mapdata.LoadFS(o.definitionsFS)
	if err != nil {
		o.setupErr = fmt.Errorf("orchestrator: load map definitions: %w", err)
		return
	}
	o.store = store
}
