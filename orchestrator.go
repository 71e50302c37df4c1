package mapgen

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
	"github.com/goliatone/go-mapgen/pkg/orchestrator"
	"github.com/goliatone/go-mapgen/pkg/render"
)

// Request selects the map, renderer, locale, and theme for one generation.
type Request = orchestrator.Request

// Result is the rendered output plus its MIME type.
type Result = orchestrator.Result

// RenderOptions describes per-request overrides renderers can use to rebase
// asset URLs, suppress asset tags, or localize popup strings.
type RenderOptions = render.RenderOptions

// Definition is one declarative map entry as loaded from data documents.
type Definition = mapdata.Definition

// NewOrchestrator builds a generation pipeline. Callers that stick to the
// root package get the embedded definitions and the leaflet renderer without
// importing any subpackage.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML looks up the map definition, builds its widget, and renders it
// using the named renderer. It is the simplest entry point for callers that
// just want HTML output.
func GenerateHTML(ctx context.Context, mapID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	result, err := gen.Generate(ctx, orchestrator.Request{
		MapID:    mapID,
		Renderer: rendererName,
	})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}

// GenerateHTMLFromDefinition renders a definition directly, bypassing the
// store lookup while still delegating to the orchestrator.
func GenerateHTMLFromDefinition(ctx context.Context, def Definition, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	result, err := gen.Generate(ctx, orchestrator.Request{
		Definition: &def,
		Renderer:   rendererName,
	})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}

// WithDefinitionsFS supplies the map definition documents loaded at startup.
func WithDefinitionsFS(fsys fs.FS) orchestrator.Option {
	return orchestrator.WithDefinitionsFS(fsys)
}

// WithStore injects an already loaded definition store.
func WithStore(store *mapdata.Store) orchestrator.Option {
	return orchestrator.WithStore(store)
}

// WithDefaultRenderer overrides the renderer used when requests omit one.
func WithDefaultRenderer(name string) orchestrator.Option {
	return orchestrator.WithDefaultRenderer(name)
}

// WithTranslator sets the translator applied when requests carry a locale.
func WithTranslator(translator render.Translator) orchestrator.Option {
	return orchestrator.WithTranslator(translator)
}

// WithThemeSelector wires a go-theme selector; requests naming a theme or
// variant resolve through it before the renderer runs.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeSelection fixes a resolved theme selection for every request that
// does not name a theme itself.
func WithThemeSelection(selection *theme.Selection) orchestrator.Option {
	return orchestrator.WithThemeSelection(selection)
}
