package leaflet

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	css := string(data)
	if !strings.Contains(css, ".mapgen-map") {
		t.Fatalf("expected map container styles")
	}
	if !strings.Contains(css, ".mapgen-icon-comida") {
		t.Fatalf("expected category icon styles")
	}
}
