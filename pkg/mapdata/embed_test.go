package mapdata

import (
	"testing"

	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

func TestEmbeddedDefinitionsLoad(t *testing.T) {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded definitions: %v", err)
	}

	ids := store.IDs()
	want := []string{"negocios", "ruta-spondylus", "ubicacion"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}

	negocios, ok := store.Definition("negocios")
	if !ok {
		t.Fatal("expected negocios definition")
	}
	if negocios.Kind != mapwidget.KindPublic {
		t.Fatalf("expected public kind, got %q", negocios.Kind)
	}
	if len(negocios.Markers) != 4 {
		t.Fatalf("expected four markers, got %d", len(negocios.Markers))
	}

	picker, ok := store.Definition("ubicacion")
	if !ok {
		t.Fatal("expected ubicacion definition")
	}
	if picker.Kind != mapwidget.KindPicker {
		t.Fatalf("expected picker kind, got %q", picker.Kind)
	}
	if picker.LatFieldID != "latitude" || picker.LngFieldID != "longitude" {
		t.Fatalf("unexpected field ids: %q, %q", picker.LatFieldID, picker.LngFieldID)
	}
}
