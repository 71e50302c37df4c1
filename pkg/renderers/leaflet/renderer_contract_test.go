package leaflet_test

import (
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/render"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet"
	"github.com/goliatone/go-mapgen/pkg/testsupport"
)

func publicFixture() *mapwidget.PublicMap {
	return mapwidget.BuildPublicMap(mapwidget.NewPublicMapOptions(
		mapwidget.WithPublicContainerID("negocios"),
		mapwidget.WithMarkers(
			mapwidget.Marker{Lat: -2.19616, Lng: -79.88621, Name: "Cafetería El Centro", Route: "Cuenca", Category: "comida"},
			mapwidget.Marker{Lat: -2.90055, Lng: -79.00453, Name: "Museo Pumapungo", Route: "Cuenca", Category: "historico"},
		),
	))
}

func TestRenderer_RenderContract(t *testing.T) {
	renderer, err := leaflet.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if got := renderer.Name(); got != "leaflet" {
		t.Fatalf("unexpected renderer name: %s", got)
	}
	if got := renderer.ContentType(); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %s", got)
	}

	output, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	if !strings.Contains(html, `<div id="negocios" class="mapgen-map" data-mapgen="public"></div>`) {
		t.Fatalf("expected map container, got:\n%s", html)
	}
	if !strings.Contains(html, `<script type="application/json" data-mapgen-config="negocios">`) {
		t.Fatalf("expected config script tag, got:\n%s", html)
	}
	if !strings.Contains(html, `"kind":"public"`) {
		t.Fatalf("expected public payload, got:\n%s", html)
	}
	if !strings.Contains(html, leaflet.DefaultVendorStylesheetURL) {
		t.Fatalf("expected Leaflet stylesheet tag, got:\n%s", html)
	}
	if !strings.Contains(html, `integrity="`+leaflet.DefaultVendorScriptIntegrity+`"`) {
		t.Fatalf("expected script integrity attribute, got:\n%s", html)
	}
	if !strings.Contains(html, `href="assets/mapgen-leaflet.css"`) {
		t.Fatalf("expected widget stylesheet link, got:\n%s", html)
	}
	if !strings.Contains(html, `src="runtime/mapgen-leaflet.js" defer`) {
		t.Fatalf("expected runtime script tag, got:\n%s", html)
	}
}

func TestRenderer_RenderPicker(t *testing.T) {
	renderer, err := leaflet.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	picker := mapwidget.NewPicker(mapwidget.NewPickerOptions(
		mapwidget.WithContainerID("ubicacion"),
		mapwidget.WithCoordinateFields("form-lat", "form-lng"),
	))

	output, err := renderer.Render(testsupport.Context(), picker, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	if !strings.Contains(html, `data-mapgen="picker"`) {
		t.Fatalf("expected picker container, got:\n%s", html)
	}
	if !strings.Contains(html, `"latField":"form-lat"`) || !strings.Contains(html, `"lngField":"form-lng"`) {
		t.Fatalf("expected picker field wiring, got:\n%s", html)
	}
	if !strings.Contains(html, `"precision":6`) {
		t.Fatalf("expected coordinate precision in payload, got:\n%s", html)
	}
}

func TestRenderer_OmitAssets(t *testing.T) {
	renderer, err := leaflet.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{OmitAssets: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	if strings.Contains(html, "<link") || strings.Contains(html, "unpkg.com") {
		t.Fatalf("expected no asset tags, got:\n%s", html)
	}
	if !strings.Contains(html, `data-mapgen-config="negocios"`) {
		t.Fatalf("expected config script to remain, got:\n%s", html)
	}
}

func TestRenderer_AssetURLPrefix(t *testing.T) {
	renderer, err := leaflet.New(leaflet.WithAssetURLPrefix("/static/mapgen"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	if !strings.Contains(html, `href="/static/mapgen/assets/mapgen-leaflet.css"`) {
		t.Fatalf("expected prefixed stylesheet, got:\n%s", html)
	}
	if !strings.Contains(html, `src="/static/mapgen/runtime/mapgen-leaflet.js"`) {
		t.Fatalf("expected prefixed runtime script, got:\n%s", html)
	}
	if !strings.Contains(html, leaflet.DefaultVendorScriptURL) {
		t.Fatalf("expected vendor URL untouched by prefix, got:\n%s", html)
	}
}

func TestRenderer_RequestAssetURLPrefixWins(t *testing.T) {
	renderer, err := leaflet.New(leaflet.WithAssetURLPrefix("/static/mapgen"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{
		AssetURLPrefix: "/cdn/v2",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), `href="/cdn/v2/assets/mapgen-leaflet.css"`) {
		t.Fatalf("expected request prefix to win, got:\n%s", output)
	}
}

func TestRenderer_Theme(t *testing.T) {
	renderer, err := leaflet.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{
		Theme: &render.ThemeConfig{
			Theme:   "costa",
			Variant: "dark",
			CSSVars: map[string]string{
				"--mapgen-icon-comida": "#b91c1c",
				"--mapgen-map-height":  "360px",
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	if !strings.Contains(html, `class="mapgen-map mapgen-theme-costa-dark"`) {
		t.Fatalf("expected theme class on container, got:\n%s", html)
	}
	if !strings.Contains(html, "#negocios {") {
		t.Fatalf("expected scoped style block, got:\n%s", html)
	}
	if !strings.Contains(html, "--mapgen-icon-comida: #b91c1c;") {
		t.Fatalf("expected css var emitted, got:\n%s", html)
	}
}

func TestRenderer_InlineStyles(t *testing.T) {
	renderer, err := leaflet.New(leaflet.WithInlineStyles())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	if !strings.Contains(html, ".mapgen-map {") {
		t.Fatalf("expected inlined stylesheet, got:\n%s", html)
	}
	if strings.Contains(html, `href="assets/mapgen-leaflet.css"`) {
		t.Fatalf("expected no stylesheet link when inlined, got:\n%s", html)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name == "templates/map.tmpl" {
				return "custom-output", nil
			}
			return "", nil
		},
	}

	renderer, err := leaflet.New(leaflet.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), publicFixture(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
}

func TestRenderer_UnsupportedWidget(t *testing.T) {
	renderer, err := leaflet.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render(testsupport.Context(), unknownWidget{}, render.RenderOptions{}); err == nil {
		t.Fatal("expected error for unsupported widget")
	}
}

type unknownWidget struct{}

func (unknownWidget) Kind() string { return "globe" }

type stubTemplateRenderer struct {
	called             bool
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	return nil
}
