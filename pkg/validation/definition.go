package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapdata"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

// Issue represents one definition problem with location metadata. Locations
// are dotted segments relative to the map entry ("markers[2]", "center").
type Issue struct {
	Map      string `json:"map,omitempty"`
	Location string `json:"location,omitempty"`
	Message  string `json:"message"`
}

// Result captures validation outcomes for editor previews and CLI linting.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Options configure validation behaviour.
type Options struct {
	// IconCategories lists the icon names markers may reference. Empty
	// skips the category check.
	IconCategories []string
}

// ValidateStore checks every definition in the store. The result aggregates
// issues in sorted map order.
func ValidateStore(store *mapdata.Store, opts Options) Result {
	result := Result{Valid: true}
	if store == nil {
		return result
	}
	for _, id := range store.IDs() {
		def, _ := store.Definition(id)
		partial := ValidateDefinition(def, opts)
		if !partial.Valid {
			result.Valid = false
			result.Issues = append(result.Issues, partial.Issues...)
		}
	}
	return result
}

// ValidateDefinition checks one map definition for problems that degrade
// rendering: entries the resolver would silently skip, references that fall
// back to defaults, and values the widget layer would clamp.
func ValidateDefinition(def mapdata.Definition, opts Options) Result {
	var issues []Issue

	if def.Center != nil && !usableCenter(*def.Center) {
		issues = append(issues, Issue{
			Map:      def.ID,
			Location: "center",
			Message:  fmt.Sprintf("center (%g, %g) is outside the valid coordinate range", def.Center.Lat, def.Center.Lng),
		})
	}

	maxZoom := def.Tile.MaxZoom
	if maxZoom <= 0 {
		maxZoom = mapwidget.DefaultTileMax
	}
	if def.Zoom > maxZoom {
		issues = append(issues, Issue{
			Map:      def.ID,
			Location: "zoom",
			Message:  fmt.Sprintf("zoom %d exceeds the tile layer maximum %d and will be clamped", def.Zoom, maxZoom),
		})
	}

	switch def.Kind {
	case mapwidget.KindPicker:
		issues = append(issues, pickerIssues(def)...)
	default:
		issues = append(issues, publicIssues(def, opts)...)
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

func pickerIssues(def mapdata.Definition) []Issue {
	var issues []Issue
	if def.LatFieldID == "" {
		issues = append(issues, Issue{
			Map:      def.ID,
			Location: "latField",
			Message:  "picker maps need a latitude field id",
		})
	}
	if def.LngFieldID == "" {
		issues = append(issues, Issue{
			Map:      def.ID,
			Location: "lngField",
			Message:  "picker maps need a longitude field id",
		})
	}
	if len(def.Markers) > 0 {
		issues = append(issues, Issue{
			Map:      def.ID,
			Location: "markers",
			Message:  fmt.Sprintf("picker maps ignore markers (%d defined)", len(def.Markers)),
		})
	}
	return issues
}

func publicIssues(def mapdata.Definition, opts Options) []Issue {
	var issues []Issue
	for i, marker := range def.Markers {
		location := fmt.Sprintf("markers[%d]", i)
		if !marker.HasLocation() {
			issues = append(issues, Issue{
				Map:      def.ID,
				Location: location,
				Message:  fmt.Sprintf("marker %q has no usable coordinates and will be skipped", marker.DisplayName("(unnamed)")),
			})
		}
		if marker.Category != "" && len(opts.IconCategories) > 0 && !knownCategory(opts.IconCategories, marker.Category) {
			issues = append(issues, Issue{
				Map:      def.ID,
				Location: location,
				Message:  fmt.Sprintf("unknown icon category %q falls back to the default pin (known: %s)", marker.Category, strings.Join(opts.IconCategories, ", ")),
			})
		}
	}

	if len(def.Path) > 0 && !def.Path.Drawable() {
		issues = append(issues, Issue{
			Map:      def.ID,
			Location: "path",
			Message:  fmt.Sprintf("path has %d usable points; at least 2 are needed to draw a line", len(def.Path.Clean())),
		})
	}

	return issues
}

func knownCategory(categories []string, category string) bool {
	needle := strings.ToLower(strings.TrimSpace(category))
	for _, candidate := range categories {
		if candidate == needle {
			return true
		}
	}
	return false
}

// usableCenter is stricter than geo's finiteness check: the widgets pass any
// finite center straight to the tile layer, so an out-of-range latitude only
// surfaces as a map pointing at the wrong place. The linter flags it here.
func usableCenter(center geo.LatLng) bool {
	if !center.Valid() {
		return false
	}
	return center.Lat >= -90 && center.Lat <= 90 && center.Lng >= -180 && center.Lng <= 180
}
