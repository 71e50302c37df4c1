package mapwidget

import "github.com/goliatone/go-mapgen/pkg/geo"

// PlacedMarker is a marker that survived validation, ready for a renderer:
// position, prebuilt popup markup, and the icon category.
type PlacedMarker struct {
	Position  geo.LatLng
	PopupHTML string
	Category  string
}

// View is the resolved initial view of a map. When Fit is non-nil the map
// fits those bounds with FitPadding pixels of slack; otherwise it centers on
// Center at Zoom.
type View struct {
	Center     geo.LatLng
	Zoom       int
	Fit        *geo.Bounds
	FitPadding int
}

// PublicMap is the render-ready plan of a public multi-marker map.
type PublicMap struct {
	opts PublicMapOptions

	Markers []PlacedMarker
	Path    geo.Path
	View    View
}

// BuildPublicMap resolves opts into a plan. Descriptors without a finite
// coordinate pair are skipped silently; the path is dropped unless at least
// two valid points remain; the view follows the placement rules: two or more
// markers fit their combined bounds, exactly one centers at the focus zoom,
// none leaves the view where the path (or the initial view) put it.
func BuildPublicMap(opts PublicMapOptions) *PublicMap {
	opts = opts.normalize()

	m := &PublicMap{
		opts: opts,
		View: View{Center: opts.Start, Zoom: opts.Zoom},
	}

	if opts.Path.Drawable() {
		m.Path = opts.Path.Clean()
		bounds := geo.NewBounds().ExtendPath(m.Path)
		m.View.Fit = &bounds
		m.View.FitPadding = opts.FitPadding
	}

	for _, marker := range opts.Markers {
		if !marker.HasLocation() {
			continue
		}
		m.Markers = append(m.Markers, PlacedMarker{
			Position:  marker.Position(),
			PopupHTML: buildPopupHTML(marker, opts),
			Category:  marker.Category,
		})
	}

	switch len(m.Markers) {
	case 0:
		// Path fit, or the initial view, stands.
	case 1:
		m.View = View{Center: m.Markers[0].Position, Zoom: opts.FocusZoom}
	default:
		bounds := geo.NewBounds()
		for _, placed := range m.Markers {
			bounds = bounds.Extend(placed.Position)
		}
		m.View = View{Center: opts.Start, Zoom: opts.Zoom, Fit: &bounds, FitPadding: opts.FitPadding}
	}

	return m
}

// Kind implements Widget.
func (m *PublicMap) Kind() string {
	return KindPublic
}

// Options returns the resolved map configuration.
func (m *PublicMap) Options() PublicMapOptions {
	return m.opts
}
