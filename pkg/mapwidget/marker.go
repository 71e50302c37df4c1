package mapwidget

import (
	"strings"

	"github.com/goliatone/go-mapgen/pkg/geo"
)

// Marker describes one point of interest on a public map. Only the
// coordinates are required; every text field is optional and treated as
// untrusted content (escaped before it reaches markup).
type Marker struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	// Name labels the popup. Empty falls back to the configured default
	// label.
	Name string `json:"name,omitempty"`
	// Route is the listing route the business belongs to. It drives the
	// popup's listings link.
	Route string `json:"route,omitempty"`
	// ExternalMapURL links out to a maps product (directions). Omitted from
	// the popup when empty.
	ExternalMapURL string `json:"mapsUrl,omitempty"`
	// WhatsAppPhone is the contact number for the messaging link, with or
	// without a leading "+". Omitted from the popup when empty.
	WhatsAppPhone string `json:"whatsapp,omitempty"`
	// Category selects a marker icon (for example "comida" or "parque").
	// Unknown or empty categories use the fallback pin.
	Category string `json:"category,omitempty"`
}

// Position returns the marker's coordinates.
func (m Marker) Position() geo.LatLng {
	return geo.LatLng{Lat: m.Lat, Lng: m.Lng}
}

// HasLocation reports whether both coordinates are finite. Markers without a
// location are skipped silently during map resolution.
func (m Marker) HasLocation() bool {
	return m.Position().Valid()
}

// DisplayName returns the popup heading before escaping: the trimmed name, or
// fallback when the name is empty.
func (m Marker) DisplayName(fallback string) string {
	if name := strings.TrimSpace(m.Name); name != "" {
		return name
	}
	return fallback
}
