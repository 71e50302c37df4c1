package render

import (
	"context"

	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

// Renderer produces the final output for one widget. Implementations decide
// the medium: leaflet and maplibre emit HTML, tui drives a terminal session.
type Renderer interface {
	// Name keys the renderer inside a Registry.
	Name() string
	// ContentType is the MIME type of Render's output.
	ContentType() string
	Render(ctx context.Context, widget mapwidget.Widget, options RenderOptions) ([]byte, error)
}
