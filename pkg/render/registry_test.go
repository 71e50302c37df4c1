package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (s stubRenderer) Render(context.Context, mapwidget.Widget, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(stubRenderer{name: "leaflet"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := reg.Get("leaflet")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "leaflet" {
		t.Fatalf("expected leaflet renderer, got %q", renderer.Name())
	}
	if !reg.Has("leaflet") {
		t.Fatal("expected Has to report registered renderer")
	}
}

func TestRegistryRejectsDuplicatesAndNil(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "leaflet"})

	if err := reg.Register(stubRenderer{name: "leaflet"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("expected nil renderer to be rejected")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatal("expected empty name to be rejected")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	if _, err := NewRegistry().Get("nope"); err == nil {
		t.Fatal("expected missing renderer error")
	}
}

func TestRegistryMustGetPanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing renderer")
		}
	}()
	NewRegistry().MustGet("nope")
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "tui"})
	reg.MustRegister(stubRenderer{name: "leaflet"})
	reg.MustRegister(stubRenderer{name: "maplibre"})

	names := reg.List()
	want := []string{"leaflet", "maplibre", "tui"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}
