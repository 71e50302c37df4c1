package template

import "io"

// TemplateRenderer is the engine seam the map renderers draw from. Its
// surface matches the github.com/goliatone/go-template engine, so that
// library or the bundled pongo2 adapter satisfies it unchanged.
//
// Render routes to RenderTemplate or RenderString depending on whether
// name looks like inline template content. RenderTemplate resolves name
// against the engine's template source, appending the configured extension
// when missing. RegisterFilter installs a named filter usable from any
// template, and GlobalContext merges data into every subsequent render.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
