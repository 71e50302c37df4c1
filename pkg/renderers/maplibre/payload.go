package maplibre

import (
	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet/icons"
)

// bootstrapConfig is the JSON payload the MapLibre app script reads from the
// page's data script. Coordinates use MapLibre's [lng, lat] order; the app
// script assembles a raster style from the tile section, so zoom levels match
// the XYZ scheme.
type bootstrapConfig struct {
	Kind      string                `json:"kind"`
	Container string                `json:"container"`
	Tile      tileConfig            `json:"tile"`
	Center    [2]float64            `json:"center"`
	Zoom      int                   `json:"zoom"`
	Fit       *fitConfig            `json:"fit,omitempty"`
	Picker    *pickerConfig         `json:"picker,omitempty"`
	Markers   []markerConfig        `json:"markers,omitempty"`
	Path      [][2]float64          `json:"path,omitempty"`
	Icons     map[string]iconConfig `json:"icons,omitempty"`
}

type tileConfig struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

type fitConfig struct {
	// Bounds holds [[west, south], [east, north]].
	Bounds  [2][2]float64 `json:"bounds"`
	Padding int           `json:"padding"`
}

type pickerConfig struct {
	LatField  string     `json:"latField"`
	LngField  string     `json:"lngField"`
	Start     [2]float64 `json:"start"`
	Precision int        `json:"precision"`
}

type markerConfig struct {
	LngLat [2]float64 `json:"lngLat"`
	Popup  string     `json:"popup"`
	Icon   string     `json:"icon,omitempty"`
}

type iconConfig struct {
	ClassName string `json:"className"`
	HTML      string `json:"html"`
	Size      [2]int `json:"size"`
	// Offset shifts the element so its tip sits on the coordinates.
	Offset [2]int `json:"offset"`
}

func lngLat(p geo.LatLng) [2]float64 {
	return [2]float64{p.Lng, p.Lat}
}

func tile(t mapwidget.TileLayer) tileConfig {
	return tileConfig{URL: t.URL, Attribution: t.Attribution, MaxZoom: t.MaxZoom}
}

func pickerPayload(p *mapwidget.Picker) bootstrapConfig {
	opts := p.Options()
	return bootstrapConfig{
		Kind:      p.Kind(),
		Container: opts.ContainerID,
		Tile:      tile(opts.Tile),
		Center:    lngLat(p.Center()),
		Zoom:      p.Zoom(),
		Picker: &pickerConfig{
			LatField:  opts.LatFieldID,
			LngField:  opts.LngFieldID,
			Start:     lngLat(p.Position()),
			Precision: geo.CoordPrecision,
		},
	}
}

func publicPayload(m *mapwidget.PublicMap, registry *icons.Registry) bootstrapConfig {
	opts := m.Options()
	cfg := bootstrapConfig{
		Kind:      m.Kind(),
		Container: opts.ContainerID,
		Tile:      tile(opts.Tile),
		Center:    lngLat(m.View.Center),
		Zoom:      m.View.Zoom,
	}

	if fit := m.View.Fit; fit != nil && !fit.IsEmpty() {
		sw, ne := fit.SouthWest(), fit.NorthEast()
		cfg.Fit = &fitConfig{
			Bounds:  [2][2]float64{{sw.Lng, sw.Lat}, {ne.Lng, ne.Lat}},
			Padding: m.View.FitPadding,
		}
	}

	if len(m.Path) > 0 {
		cfg.Path = make([][2]float64, len(m.Path))
		for i, p := range m.Path {
			cfg.Path[i] = lngLat(p)
		}
	}

	if len(m.Markers) > 0 {
		cfg.Markers = make([]markerConfig, len(m.Markers))
		for i, marker := range m.Markers {
			entry := markerConfig{
				LngLat: lngLat(marker.Position),
				Popup:  marker.PopupHTML,
			}
			if registry != nil {
				if descriptor, ok := registry.Resolve(marker.Category); ok {
					entry.Icon = descriptor.Name
					if cfg.Icons == nil {
						cfg.Icons = make(map[string]iconConfig)
					}
					cfg.Icons[descriptor.Name] = iconConfig{
						ClassName: descriptor.ClassName,
						HTML:      descriptor.Markup,
						Size:      descriptor.Size,
						Offset: [2]int{
							descriptor.Size[0]/2 - descriptor.Anchor[0],
							descriptor.Size[1]/2 - descriptor.Anchor[1],
						},
					}
				}
			}
			cfg.Markers[i] = entry
		}
	}

	return cfg
}
