package mapdata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

const sampleYAML = `
version: 1
maps:
  - id: negocios
    kind: public
    title: Negocios de la ruta
    center: { lat: -1.8312, lng: -78.1834 }
    zoom: 6
    path:
      - { lat: -1.0, lng: -80.9 }
      - { lat: -1.5, lng: -80.7 }
    markers:
      - lat: -2.19616
        lng: -79.88621
        name: Cafetería El Centro
        route: Cuenca
        category: comida
        mapsUrl: https://maps.google.com/?q=-2.19616,-79.88621
        whatsapp: "+593987654321"
      - name: Sin coordenadas
        route: Tena
  - id: ubicacion
    kind: picker
    latField: lat
    lngField: lng
    zoom: 13
`

func TestLoadFSParsesYAML(t *testing.T) {
	store, err := LoadFS(fstest.MapFS{
		"maps.yaml": &fstest.MapFile{Data: []byte(sampleYAML)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	def, ok := store.Definition("negocios")
	if !ok {
		t.Fatal("expected negocios definition")
	}
	if def.Kind != mapwidget.KindPublic {
		t.Fatalf("expected public kind, got %q", def.Kind)
	}
	if def.Center == nil || *def.Center != (geo.LatLng{Lat: -1.8312, Lng: -78.1834}) {
		t.Fatalf("expected parsed center, got %+v", def.Center)
	}
	if len(def.Markers) != 2 {
		t.Fatalf("expected 2 raw markers, got %d", len(def.Markers))
	}
	if def.Markers[0].WhatsAppPhone != "+593987654321" {
		t.Fatalf("expected whatsapp carried, got %q", def.Markers[0].WhatsAppPhone)
	}
	if def.Markers[1].HasLocation() {
		t.Fatal("expected marker without coordinates to decode as locationless")
	}
	if len(def.Path) != 2 {
		t.Fatalf("expected 2 path points, got %d", len(def.Path))
	}

	picker, ok := store.Definition("ubicacion")
	if !ok {
		t.Fatal("expected ubicacion definition")
	}
	if picker.Kind != mapwidget.KindPicker || picker.LatFieldID != "lat" || picker.LngFieldID != "lng" {
		t.Fatalf("expected picker with field ids, got %+v", picker)
	}
}

func TestLoadFSParsesJSON(t *testing.T) {
	store, err := LoadFS(fstest.MapFS{
		"maps.json": &fstest.MapFile{Data: []byte(`{
			"version": 1,
			"maps": [{"id": "uno", "markers": [{"lat": -2.0, "lng": -79.0, "name": "Uno"}]}]
		}`)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	def, ok := store.Definition("uno")
	if !ok {
		t.Fatal("expected uno definition")
	}
	if def.Kind != mapwidget.KindPublic {
		t.Fatalf("expected public default kind, got %q", def.Kind)
	}
	if len(def.Markers) != 1 || !def.Markers[0].HasLocation() {
		t.Fatalf("expected one located marker, got %+v", def.Markers)
	}
}

func TestLoadFSRejectsDuplicates(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("maps:\n  - id: dup\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("maps:\n  - id: dup\n")},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate map") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFSRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"empty id", "maps:\n  - kind: public\n", "without an id"},
		{"unknown kind", "maps:\n  - id: x\n    kind: globe\n", "unknown kind"},
		{"future version", "version: 2\nmaps: []\n", "unsupported version"},
		{"empty file", "", "is empty"},
		{"garbage", ":\n\t::not yaml", "invalid JSON or YAML"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFS(fstest.MapFS{
				"maps.yaml": &fstest.MapFile{Data: []byte(tc.data)},
			})
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFSNilAndIrrelevantFiles(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("expected empty store for nil fs, got %v / %v", store, err)
	}

	store, err = LoadFS(fstest.MapFS{
		"readme.md": &fstest.MapFile{Data: []byte("# notas")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatal("expected non-definition files ignored")
	}
}

func TestStoreIDsSorted(t *testing.T) {
	store, err := LoadFS(fstest.MapFS{
		"maps.yaml": &fstest.MapFile{Data: []byte("maps:\n  - id: zeta\n  - id: alfa\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ids := store.IDs()
	if len(ids) != 2 || ids[0] != "alfa" || ids[1] != "zeta" {
		t.Fatalf("expected sorted ids, got %v", ids)
	}
}

func TestDefinitionConversions(t *testing.T) {
	store, err := LoadFS(fstest.MapFS{
		"maps.yaml": &fstest.MapFile{Data: []byte(sampleYAML)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	def, _ := store.Definition("negocios")
	opts := def.PublicMapOptions()
	if opts.ContainerID != "negocios" {
		t.Fatalf("expected container from id, got %q", opts.ContainerID)
	}
	if opts.Zoom != 6 || len(opts.Markers) != 2 {
		t.Fatalf("expected definition carried into options, got %+v", opts)
	}

	widget := def.Widget()
	public, ok := widget.(*mapwidget.PublicMap)
	if !ok {
		t.Fatalf("expected public map widget, got %T", widget)
	}
	if len(public.Markers) != 1 {
		t.Fatalf("expected locationless marker skipped at build, got %d", len(public.Markers))
	}

	pickerDef, _ := store.Definition("ubicacion")
	pickerWidget := pickerDef.Widget()
	picker, ok := pickerWidget.(*mapwidget.Picker)
	if !ok {
		t.Fatalf("expected picker widget, got %T", pickerWidget)
	}
	if picker.Options().Zoom != 13 {
		t.Fatalf("expected picker zoom 13, got %d", picker.Options().Zoom)
	}
}
