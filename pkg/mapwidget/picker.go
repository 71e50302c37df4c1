package mapwidget

import "github.com/goliatone/go-mapgen/pkg/geo"

// Picker is the headless model of the coordinate picker: one draggable
// marker, two coordinate fields kept in sync with it, and a view that pans to
// follow the marker. The browser runtime mirrors these transitions; tests
// exercise them here directly.
type Picker struct {
	opts PickerOptions

	position geo.LatLng
	latField string
	lngField string
	center   geo.LatLng
	zoom     int
}

// NewPicker resolves opts and returns a picker with the marker on the start
// coordinate. The field values are populated immediately so the form and the
// marker agree from the first paint.
func NewPicker(opts PickerOptions) *Picker {
	opts = opts.normalize()
	p := &Picker{
		opts:   opts,
		center: opts.Start,
		zoom:   opts.Zoom,
	}
	p.place(opts.Start)
	return p
}

// Kind implements Widget.
func (p *Picker) Kind() string {
	return KindPicker
}

// Options returns the resolved picker configuration.
func (p *Picker) Options() PickerOptions {
	return p.opts
}

// Click moves the marker to the clicked position, updates both field values,
// and pans the view there. Invalid positions are ignored.
func (p *Picker) Click(position geo.LatLng) {
	p.moveTo(position)
}

// DragEnd commits the marker's dragged position, updating fields and view
// exactly like Click.
func (p *Picker) DragEnd(position geo.LatLng) {
	p.moveTo(position)
}

// Position returns the current marker position.
func (p *Picker) Position() geo.LatLng {
	return p.position
}

// FieldValues returns the current coordinate field contents, formatted with
// six decimals.
func (p *Picker) FieldValues() (lat, lng string) {
	return p.latField, p.lngField
}

// Center returns the current view center.
func (p *Picker) Center() geo.LatLng {
	return p.center
}

// Zoom returns the current zoom level.
func (p *Picker) Zoom() int {
	return p.zoom
}

func (p *Picker) moveTo(position geo.LatLng) {
	if !position.Valid() {
		return
	}
	p.place(position)
	p.center = position
}

func (p *Picker) place(position geo.LatLng) {
	p.position = position
	p.latField = geo.FormatCoord(position.Lat)
	p.lngField = geo.FormatCoord(position.Lng)
}
