package maplibre

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsBundle(t *testing.T) {
	script, err := fs.ReadFile(AssetsFS(), "assets/mapgen-maplibre.js")
	if err != nil {
		t.Fatalf("read app script: %v", err)
	}
	if !strings.Contains(string(script), "maplibregl.Map") {
		t.Fatalf("expected app script to drive maplibre, got:\n%s", script)
	}

	styles, err := fs.ReadFile(AssetsFS(), "assets/mapgen-maplibre.css")
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(styles), ".mapgen-page-map") {
		t.Fatalf("expected page map styles, got:\n%s", styles)
	}
}
