package mapgen

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedTemplatesCarryTheConfigScriptTag(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "templates/map.tmpl")
	if err != nil {
		t.Fatalf("expected the leaflet template bundle to be readable: %v", err)
	}
	if !strings.Contains(string(data), "data-mapgen-config") {
		t.Fatal("expected the map template to emit the runtime config script tag")
	}
}
