package leaflet

import (
	"testing"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet/icons"
	"github.com/goliatone/go-mapgen/pkg/testsupport"
)

func TestPickerPayloadDefaults(t *testing.T) {
	picker := mapwidget.NewPicker(mapwidget.NewPickerOptions(
		mapwidget.WithCoordinateFields("lat", "lng"),
	))

	cfg := pickerPayload(picker)
	if cfg.Kind != mapwidget.KindPicker {
		t.Fatalf("expected picker kind, got %q", cfg.Kind)
	}
	if cfg.Container != mapwidget.DefaultContainerID {
		t.Fatalf("expected default container, got %q", cfg.Container)
	}

	wantPicker := &pickerConfig{
		LatField:  "lat",
		LngField:  "lng",
		Start:     point(mapwidget.DefaultStart),
		Precision: geo.CoordPrecision,
	}
	if diff := testsupport.Diff(wantPicker, cfg.Picker); diff != "" {
		t.Fatalf("picker section mismatch (-want +got):\n%s", diff)
	}
	if cfg.View.Zoom != mapwidget.DefaultZoom {
		t.Fatalf("expected default zoom, got %d", cfg.View.Zoom)
	}
	if cfg.Tile.MaxZoom != mapwidget.DefaultTileMax {
		t.Fatalf("expected tile max zoom, got %d", cfg.Tile.MaxZoom)
	}
}

func TestPublicPayloadSingleMarkerView(t *testing.T) {
	public := mapwidget.BuildPublicMap(mapwidget.NewPublicMapOptions(
		mapwidget.WithMarkers(mapwidget.Marker{Lat: -2.9, Lng: -79.0, Name: "Museo"}),
	))

	cfg := publicPayload(public, icons.NewDefaultRegistry())
	if cfg.View.Fit != nil {
		t.Fatalf("expected no fit for single marker, got %+v", cfg.View.Fit)
	}
	if cfg.View.Zoom != mapwidget.DefaultFocusZoom {
		t.Fatalf("expected focus zoom, got %d", cfg.View.Zoom)
	}
	if cfg.View.Center != (pointConfig{Lat: -2.9, Lng: -79.0}) {
		t.Fatalf("expected marker center, got %+v", cfg.View.Center)
	}
}

func TestPublicPayloadFitAndPath(t *testing.T) {
	public := mapwidget.BuildPublicMap(mapwidget.NewPublicMapOptions(
		mapwidget.WithPath(geo.Path{
			{Lat: -1.0, Lng: -80.9},
			{Lat: -1.5, Lng: -80.7},
		}),
		mapwidget.WithMarkers(
			mapwidget.Marker{Lat: -1.0, Lng: -80.9, Name: "Norte"},
			mapwidget.Marker{Lat: -1.5, Lng: -80.7, Name: "Sur"},
		),
	))

	cfg := publicPayload(public, icons.NewDefaultRegistry())
	if len(cfg.Path) != 2 {
		t.Fatalf("expected path carried, got %+v", cfg.Path)
	}
	fit := cfg.View.Fit
	if fit == nil {
		t.Fatal("expected fit bounds")
	}
	if fit.Padding != mapwidget.DefaultFitPadding {
		t.Fatalf("expected default padding, got %d", fit.Padding)
	}
	if fit.South > fit.North || fit.West > fit.East {
		t.Fatalf("expected ordered bounds, got %+v", fit)
	}
	if fit.South > -1.5 || fit.North < -1.0 {
		t.Fatalf("expected bounds to bracket markers, got %+v", fit)
	}
}

func TestPublicPayloadIcons(t *testing.T) {
	public := mapwidget.BuildPublicMap(mapwidget.NewPublicMapOptions(
		mapwidget.WithMarkers(
			mapwidget.Marker{Lat: -1.0, Lng: -78.0, Name: "Fonda", Category: "comida"},
			mapwidget.Marker{Lat: -1.1, Lng: -78.1, Name: "Mirador", Category: "submarino"},
		),
	))

	cfg := publicPayload(public, icons.NewDefaultRegistry())
	if len(cfg.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(cfg.Markers))
	}
	if cfg.Markers[0].Icon != icons.NameComida {
		t.Fatalf("expected comida icon, got %q", cfg.Markers[0].Icon)
	}
	if cfg.Markers[1].Icon != icons.NamePin {
		t.Fatalf("expected fallback pin for unknown category, got %q", cfg.Markers[1].Icon)
	}
	if _, ok := cfg.Icons[icons.NameComida]; !ok {
		t.Fatalf("expected comida icon payload, got %v", cfg.Icons)
	}
	if _, ok := cfg.Icons[icons.NamePin]; !ok {
		t.Fatalf("expected pin icon payload, got %v", cfg.Icons)
	}
	if cfg.Markers[0].Popup == "" {
		t.Fatal("expected prebuilt popup markup")
	}
}

func TestPublicPayloadNilRegistry(t *testing.T) {
	public := mapwidget.BuildPublicMap(mapwidget.NewPublicMapOptions(
		mapwidget.WithMarkers(mapwidget.Marker{Lat: -1.0, Lng: -78.0, Category: "comida"}),
	))

	cfg := publicPayload(public, nil)
	if cfg.Markers[0].Icon != "" {
		t.Fatalf("expected no icon reference without a registry, got %q", cfg.Markers[0].Icon)
	}
	if cfg.Icons != nil {
		t.Fatalf("expected no icon payloads, got %v", cfg.Icons)
	}
}
