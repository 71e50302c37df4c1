package orchestrator

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/render"
)

type captureRenderer struct {
	name    string
	widget  mapwidget.Widget
	options render.RenderOptions
}

func (c *captureRenderer) Name() string {
	if c.name != "" {
		return c.name
	}
	return "capture"
}

func (c *captureRenderer) ContentType() string {
	return "text/plain"
}

func (c *captureRenderer) Render(_ context.Context, widget mapwidget.Widget, options render.RenderOptions) ([]byte, error) {
	c.widget = widget
	c.options = options
	return []byte("captured"), nil
}

func captureOrchestrator(capture *captureRenderer, options ...Option) *Orchestrator {
	registry := render.NewRegistry()
	registry.MustRegister(capture)
	return New(append([]Option{WithRegistry(registry)}, options...)...)
}

func TestGenerateRendersStoredMap(t *testing.T) {
	orch := New()

	result, err := orch.Generate(context.Background(), Request{MapID: "negocios"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %s", result.ContentType)
	}
	html := string(result.HTML)
	if !strings.Contains(html, `id="negocios"`) {
		t.Fatalf("expected container for map id, got:\n%s", html)
	}
	if !strings.Contains(html, `"kind":"public"`) {
		t.Fatalf("expected public payload, got:\n%s", html)
	}
}

func TestGenerateUnknownMap(t *testing.T) {
	orch := New()

	if _, err := orch.Generate(context.Background(), Request{MapID: "atlantida"}); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGenerateRequiresMapIDOrDefinition(t *testing.T) {
	orch := New()

	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error without map id")
	}
}

func TestGenerateDefinitionBypassesStore(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture, WithDefinitionsFS(nil))

	def := mapdata.Definition{
		ID:   "inline",
		Kind: mapwidget.KindPublic,
		Markers: []mapwidget.Marker{
			{Lat: -2.9, Lng: -79.0, Name: "Museo"},
		},
	}

	result, err := orch.Generate(context.Background(), Request{Definition: &def})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(result.HTML) != "captured" {
		t.Fatalf("unexpected output: %s", result.HTML)
	}

	public, ok := capture.widget.(*mapwidget.PublicMap)
	if !ok {
		t.Fatalf("expected public map widget, got %T", capture.widget)
	}
	if public.Options().ContainerID != "inline" {
		t.Fatalf("expected inline container, got %q", public.Options().ContainerID)
	}
	if len(public.Markers) != 1 {
		t.Fatalf("expected one placed marker, got %d", len(public.Markers))
	}
}

func TestGeneratePickerDefinition(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture)

	if _, err := orch.Generate(context.Background(), Request{MapID: "ubicacion"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	picker, ok := capture.widget.(*mapwidget.Picker)
	if !ok {
		t.Fatalf("expected picker widget, got %T", capture.widget)
	}
	if picker.Options().LatFieldID != "latitude" {
		t.Fatalf("expected definition field ids, got %q", picker.Options().LatFieldID)
	}
}

func TestGenerateFallsBackToRegisteredRenderer(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture)

	// The default renderer name is not registered; the orchestrator falls
	// back to the only available renderer.
	result, err := orch.Generate(context.Background(), Request{MapID: "negocios"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(result.HTML) != "captured" {
		t.Fatalf("expected capture renderer output, got %s", result.HTML)
	}
	if result.ContentType != "text/plain" {
		t.Fatalf("unexpected content type: %s", result.ContentType)
	}
}

func TestGenerateNamedRendererMissing(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture)

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios", Renderer: "hologram"}); err == nil || !strings.Contains(err.Error(), "hologram") {
		t.Fatalf("expected renderer lookup error, got %v", err)
	}
}

func TestGenerateLocalizesPopupLabels(t *testing.T) {
	capture := &captureRenderer{}
	translator := render.TranslatorFunc(func(locale, key string) (string, bool) {
		if locale == "en" && key == render.PopupDefaultNameKey {
			return "Business", true
		}
		return "", false
	})
	orch := captureOrchestrator(capture, WithTranslator(translator))

	def := mapdata.Definition{
		ID:   "inline",
		Kind: mapwidget.KindPublic,
		Markers: []mapwidget.Marker{
			{Lat: -2.9, Lng: -79.0},
		},
	}

	if _, err := orch.Generate(context.Background(), Request{Definition: &def, Locale: "en"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	public := capture.widget.(*mapwidget.PublicMap)
	if len(public.Markers) != 1 {
		t.Fatalf("expected one marker, got %d", len(public.Markers))
	}
	if !strings.Contains(public.Markers[0].PopupHTML, "Business") {
		t.Fatalf("expected localized fallback name, got %s", public.Markers[0].PopupHTML)
	}
}

func TestGenerateAppliesTransformers(t *testing.T) {
	capture := &captureRenderer{}
	extra := TransformerFunc(func(_ context.Context, def *mapdata.Definition) error {
		def.Markers = append(def.Markers, mapwidget.Marker{Lat: -0.22, Lng: -78.51, Name: "Quito"})
		return nil
	})
	orch := captureOrchestrator(capture, WithTransformers(extra))

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	public := capture.widget.(*mapwidget.PublicMap)
	found := false
	for _, marker := range public.Markers {
		if strings.Contains(marker.PopupHTML, "Quito") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected transformer marker, got %d markers", len(public.Markers))
	}
}

func TestGenerateReportsDefinitionLoadFailure(t *testing.T) {
	bad := fstest.MapFS{
		"maps.yaml": &fstest.MapFile{Data: []byte("version: 1\nmaps:\n  - kind: public\n")},
	}
	orch := New(WithDefinitionsFS(bad))

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios"}); err == nil || !strings.Contains(err.Error(), "load map definitions") {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestGenerateNoDefinitionsConfigured(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture, WithDefinitionsFS(nil))

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios"}); err == nil || !strings.Contains(err.Error(), "no map definitions") {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
