package leaflet

import (
	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet/icons"
)

// bootstrapConfig is the JSON payload the browser runtime reads from the
// fragment's config script tag. The view arrives fully resolved; the runtime
// only applies it.
type bootstrapConfig struct {
	Kind      string                `json:"kind"`
	Container string                `json:"container"`
	Tile      tileConfig            `json:"tile"`
	View      viewConfig            `json:"view"`
	Picker    *pickerConfig         `json:"picker,omitempty"`
	Markers   []markerConfig        `json:"markers,omitempty"`
	Path      []pointConfig         `json:"path,omitempty"`
	Icons     map[string]iconConfig `json:"icons,omitempty"`
}

type tileConfig struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

type pointConfig struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type viewConfig struct {
	Center pointConfig `json:"center"`
	Zoom   int         `json:"zoom"`
	Fit    *fitConfig  `json:"fit,omitempty"`
}

type fitConfig struct {
	South   float64 `json:"south"`
	West    float64 `json:"west"`
	North   float64 `json:"north"`
	East    float64 `json:"east"`
	Padding int     `json:"padding"`
}

type pickerConfig struct {
	LatField  string      `json:"latField"`
	LngField  string      `json:"lngField"`
	Start     pointConfig `json:"start"`
	Precision int         `json:"precision"`
}

type markerConfig struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
	Icon  string  `json:"icon,omitempty"`
}

type iconConfig struct {
	ClassName   string `json:"className"`
	HTML        string `json:"html"`
	Size        [2]int `json:"size"`
	Anchor      [2]int `json:"anchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
}

func point(p geo.LatLng) pointConfig {
	return pointConfig{Lat: p.Lat, Lng: p.Lng}
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
		View: viewConfig{
			Center: point(p.Center()),
			Zoom:   p.Zoom(),
		},
		Picker: &pickerConfig{
			LatField:  opts.LatFieldID,
			LngField:  opts.LngFieldID,
			Start:     point(p.Position()),
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
		View: viewConfig{
			Center: point(m.View.Center),
			Zoom:   m.View.Zoom,
		},
	}

	if fit := m.View.Fit; fit != nil && !fit.IsEmpty() {
		sw, ne := fit.SouthWest(), fit.NorthEast()
		cfg.View.Fit = &fitConfig{
			South:   sw.Lat,
			West:    sw.Lng,
			North:   ne.Lat,
			East:    ne.Lng,
			Padding: m.View.FitPadding,
		}
	}

	if len(m.Path) > 0 {
		cfg.Path = make([]pointConfig, len(m.Path))
		for i, p := range m.Path {
			cfg.Path[i] = point(p)
		}
	}

	if len(m.Markers) > 0 {
		cfg.Markers = make([]markerConfig, len(m.Markers))
		for i, marker := range m.Markers {
			entry := markerConfig{
				Lat:   marker.Position.Lat,
				Lng:   marker.Position.Lng,
				Popup: marker.PopupHTML,
			}
			if registry != nil {
				if descriptor, ok := registry.Resolve(marker.Category); ok {
					entry.Icon = descriptor.Name
					if cfg.Icons == nil {
						cfg.Icons = make(map[string]iconConfig)
					}
					cfg.Icons[descriptor.Name] = iconConfig{
						ClassName:   descriptor.ClassName,
						HTML:        descriptor.Markup,
						Size:        descriptor.Size,
						Anchor:      descriptor.Anchor,
						PopupAnchor: descriptor.PopupAnchor,
					}
				}
			}
			cfg.Markers[i] = entry
		}
	}

	return cfg
}
