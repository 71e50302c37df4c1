package mapwidget

import "github.com/goliatone/go-mapgen/pkg/geo"

// Default view constants. They are deliberate, deployment-tuned values: the
// start coordinate centers the original product's country, zoom 6 frames it,
// zoom 14 frames a single business, and tile servers top out at 19.
const (
	DefaultZoom       = 6
	DefaultFocusZoom  = 14
	DefaultTileMax    = 19
	DefaultFitPadding = 30

	DefaultContainerID = "map"

	DefaultListingsBasePath = "/listings"
	DefaultRouteParam       = "route"
)

// DefaultStart is the initial map center used when no start coordinate is
// configured.
var DefaultStart = geo.LatLng{Lat: -1.8312, Lng: -78.1834}

// TileLayer configures the base tile source.
type TileLayer struct {
	URL         string
	Attribution string
	MaxZoom     int
}

// DefaultTileLayer returns the OpenStreetMap standard tile source.
func DefaultTileLayer() TileLayer {
	return TileLayer{
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		MaxZoom:     DefaultTileMax,
	}
}

func (t TileLayer) withDefaults() TileLayer {
	defaults := DefaultTileLayer()
	if t.URL == "" {
		t.URL = defaults.URL
	}
	if t.Attribution == "" {
		t.Attribution = defaults.Attribution
	}
	if t.MaxZoom <= 0 {
		t.MaxZoom = defaults.MaxZoom
	}
	return t
}

// PickerOptions configure a coordinate picker widget.
type PickerOptions struct {
	// ContainerID is the id of the map container element.
	ContainerID string
	// LatFieldID and LngFieldID name the form inputs the picker keeps in
	// sync. Either may be empty, in which case that field is not written.
	LatFieldID string
	LngFieldID string
	// Start is the initial marker position and map center.
	Start geo.LatLng
	// Zoom is the initial zoom level.
	Zoom int
	// Tile is the base tile source.
	Tile TileLayer
}

// PickerOption mutates PickerOptions.
type PickerOption func(*PickerOptions)

// DefaultPickerOptions returns picker options with the stock view.
func DefaultPickerOptions() PickerOptions {
	return PickerOptions{
		ContainerID: DefaultContainerID,
		Start:       DefaultStart,
		Zoom:        DefaultZoom,
		Tile:        DefaultTileLayer(),
	}
}

// NewPickerOptions applies fns over the defaults and normalizes the result.
func NewPickerOptions(fns ...PickerOption) PickerOptions {
	opts := DefaultPickerOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts.normalize()
}

func (o PickerOptions) normalize() PickerOptions {
	if o.ContainerID == "" {
		o.ContainerID = DefaultContainerID
	}
	if !o.Start.Valid() {
		o.Start = DefaultStart
	}
	o.Tile = o.Tile.withDefaults()
	o.Zoom = clampZoom(o.Zoom, DefaultZoom, o.Tile.MaxZoom)
	return o
}

// WithContainerID sets the map container element id.
func WithContainerID(id string) PickerOption {
	return func(o *PickerOptions) {
		if o == nil {
			return
		}
		o.ContainerID = id
	}
}

// WithCoordinateFields names the latitude and longitude inputs the picker
// writes to.
func WithCoordinateFields(latID, lngID string) PickerOption {
	return func(o *PickerOptions) {
		if o == nil {
			return
		}
		o.LatFieldID = latID
		o.LngFieldID = lngID
	}
}

// WithStart sets the initial marker position and center.
func WithStart(start geo.LatLng) PickerOption {
	return func(o *PickerOptions) {
		if o == nil {
			return
		}
		o.Start = start
	}
}

// WithZoom sets the initial zoom level.
func WithZoom(zoom int) PickerOption {
	return func(o *PickerOptions) {
		if o == nil {
			return
		}
		o.Zoom = zoom
	}
}

// WithTileLayer overrides the base tile source.
func WithTileLayer(tile TileLayer) PickerOption {
	return func(o *PickerOptions) {
		if o == nil {
			return
		}
		o.Tile = tile
	}
}

// PublicMapOptions configure a public multi-marker map widget.
type PublicMapOptions struct {
	// ContainerID is the id of the map container element.
	ContainerID string
	// Markers are the point descriptors to place. Descriptors without a
	// finite coordinate pair are skipped.
	Markers []Marker
	// Path is an optional route polyline. It is drawn only when at least
	// two valid points remain after cleaning.
	Path geo.Path
	// Start and Zoom describe the initial view used when nothing else
	// decides the view.
	Start geo.LatLng
	Zoom  int
	// FocusZoom is the zoom applied when exactly one marker is placed.
	FocusZoom int
	// FitPadding is the pixel padding used when fitting bounds.
	FitPadding int
	// ListingsBasePath and RouteParam shape the popup's listings link.
	ListingsBasePath string
	RouteParam       string
	// Labels are the fixed popup strings.
	Labels PopupLabels
	// Tile is the base tile source.
	Tile TileLayer
}

// PublicMapOption mutates PublicMapOptions.
type PublicMapOption func(*PublicMapOptions)

// DefaultPublicMapOptions returns public map options with the stock view and
// labels.
func DefaultPublicMapOptions() PublicMapOptions {
	return PublicMapOptions{
		ContainerID:      DefaultContainerID,
		Start:            DefaultStart,
		Zoom:             DefaultZoom,
		FocusZoom:        DefaultFocusZoom,
		FitPadding:       DefaultFitPadding,
		ListingsBasePath: DefaultListingsBasePath,
		RouteParam:       DefaultRouteParam,
		Labels:           DefaultPopupLabels(),
		Tile:             DefaultTileLayer(),
	}
}

// NewPublicMapOptions applies fns over the defaults and normalizes the
// result.
func NewPublicMapOptions(fns ...PublicMapOption) PublicMapOptions {
	opts := DefaultPublicMapOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	return opts.normalize()
}

func (o PublicMapOptions) normalize() PublicMapOptions {
	if o.ContainerID == "" {
		o.ContainerID = DefaultContainerID
	}
	if !o.Start.Valid() {
		o.Start = DefaultStart
	}
	o.Tile = o.Tile.withDefaults()
	o.Zoom = clampZoom(o.Zoom, DefaultZoom, o.Tile.MaxZoom)
	o.FocusZoom = clampZoom(o.FocusZoom, DefaultFocusZoom, o.Tile.MaxZoom)
	if o.FitPadding < 0 {
		o.FitPadding = DefaultFitPadding
	}
	if o.ListingsBasePath == "" {
		o.ListingsBasePath = DefaultListingsBasePath
	}
	if o.RouteParam == "" {
		o.RouteParam = DefaultRouteParam
	}
	o.Labels = o.Labels.withDefaults()
	if o.Markers != nil {
		o.Markers = append([]Marker{}, o.Markers...)
	}
	if o.Path != nil {
		o.Path = append(geo.Path{}, o.Path...)
	}
	return o
}

// WithPublicContainerID sets the map container element id.
func WithPublicContainerID(id string) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.ContainerID = id
	}
}

// WithMarkers sets the marker descriptors.
func WithMarkers(markers ...Marker) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.Markers = markers
	}
}

// WithPath sets the route polyline.
func WithPath(path geo.Path) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.Path = path
	}
}

// WithPublicStart sets the initial view center.
func WithPublicStart(start geo.LatLng) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.Start = start
	}
}

// WithPublicZoom sets the initial zoom level.
func WithPublicZoom(zoom int) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.Zoom = zoom
	}
}

// WithFocusZoom sets the single-marker zoom level.
func WithFocusZoom(zoom int) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.FocusZoom = zoom
	}
}

// WithFitPadding sets the pixel padding used when fitting bounds.
func WithFitPadding(padding int) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.FitPadding = padding
	}
}

// WithListingsLink shapes the popup listings link: basePath?param=<route>.
func WithListingsLink(basePath, param string) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.ListingsBasePath = basePath
		o.RouteParam = param
	}
}

// WithPopupLabels overrides the fixed popup strings. Empty fields keep their
// defaults.
func WithPopupLabels(labels PopupLabels) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.Labels = labels
	}
}

// WithPublicTileLayer overrides the base tile source.
func WithPublicTileLayer(tile TileLayer) PublicMapOption {
	return func(o *PublicMapOptions) {
		if o == nil {
			return
		}
		o.Tile = tile
	}
}

func clampZoom(zoom, fallback, max int) int {
	if zoom <= 0 {
		zoom = fallback
	}
	if max > 0 && zoom > max {
		zoom = max
	}
	return zoom
}
