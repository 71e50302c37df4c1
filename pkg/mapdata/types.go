package mapdata

import (
	"math"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

// Store keeps the parsed map definitions from data documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	definitions map[string]Definition
}

// Definition returns the map definition registered under id.
func (s *Store) Definition(id string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.definitions[id]
	return def, ok
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

// Definition is one declarative map: the widget kind plus everything needed
// to build its options.
type Definition struct {
	ID     string
	Source string
	// Kind is mapwidget.KindPicker or mapwidget.KindPublic.
	Kind  string
	Title string

	Center *geo.LatLng
	Zoom   int
	Tile   mapwidget.TileLayer

	// Picker fields.
	LatFieldID string
	LngFieldID string

	// Public map content.
	Markers []mapwidget.Marker
	Path    geo.Path

	ListingsBasePath string
	RouteParam       string
}

// PickerOptions converts the definition into picker options. Unset values
// keep the widget defaults.
func (d Definition) PickerOptions() mapwidget.PickerOptions {
	var fns []mapwidget.PickerOption
	fns = append(fns, mapwidget.WithContainerID(d.ID))
	if d.LatFieldID != "" || d.LngFieldID != "" {
		fns = append(fns, mapwidget.WithCoordinateFields(d.LatFieldID, d.LngFieldID))
	}
	if d.Center != nil {
		fns = append(fns, mapwidget.WithStart(*d.Center))
	}
	if d.Zoom > 0 {
		fns = append(fns, mapwidget.WithZoom(d.Zoom))
	}
	if d.Tile != (mapwidget.TileLayer{}) {
		fns = append(fns, mapwidget.WithTileLayer(d.Tile))
	}
	return mapwidget.NewPickerOptions(fns...)
}

// PublicMapOptions converts the definition into public map options. Unset
// values keep the widget defaults.
func (d Definition) PublicMapOptions() mapwidget.PublicMapOptions {
	var fns []mapwidget.PublicMapOption
	fns = append(fns, mapwidget.WithPublicContainerID(d.ID))
	if len(d.Markers) > 0 {
		fns = append(fns, mapwidget.WithMarkers(d.Markers...))
	}
	if len(d.Path) > 0 {
		fns = append(fns, mapwidget.WithPath(d.Path))
	}
	if d.Center != nil {
		fns = append(fns, mapwidget.WithPublicStart(*d.Center))
	}
	if d.Zoom > 0 {
		fns = append(fns, mapwidget.WithPublicZoom(d.Zoom))
	}
	if d.ListingsBasePath != "" || d.RouteParam != "" {
		fns = append(fns, mapwidget.WithListingsLink(d.ListingsBasePath, d.RouteParam))
	}
	if d.Tile != (mapwidget.TileLayer{}) {
		fns = append(fns, mapwidget.WithPublicTileLayer(d.Tile))
	}
	return mapwidget.NewPublicMapOptions(fns...)
}

// Widget builds the resolved widget for the definition's kind.
func (d Definition) Widget() mapwidget.Widget {
	if d.Kind == mapwidget.KindPicker {
		return mapwidget.NewPicker(d.PickerOptions())
	}
	return mapwidget.BuildPublicMap(d.PublicMapOptions())
}

// coordOrNaN keeps absent coordinates distinguishable: a marker or path entry
// that omits lat or lng decodes to NaN and is skipped downstream instead of
// landing on (0,0).
func coordOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
