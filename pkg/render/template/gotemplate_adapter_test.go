package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-mapgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-mapgen/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var testTemplates embed.FS

func TestEngineRenderTemplateMatchesGolden(t *testing.T) {
	engine := embeddedEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("center", map[string]any{
			"lat": -1.8312,
			"lng": -78.1834,
		}, w)
	})
	assertGolden(t, "center.golden", result, written)
}

func TestEngineBaseDirLoader(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(filepath.Join("testdata", "templates")),
		gotemplate.WithExtension("tpl"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("center", map[string]any{
			"lat": -1.8312,
			"lng": -78.1834,
		}, w)
	})
	assertGolden(t, "center.golden", result, written)
}

func TestEngineGlobalContextFlowsIntoTemplates(t *testing.T) {
	engine := embeddedEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"tiles": "osm"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("tiles", nil, w)
	})
	assertGolden(t, "tiles.golden", result, written)
}

func TestEngineSeedsGlobalsFromOptions(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS(t)),
		gotemplate.WithGlobalData(map[string]any{
			"settings": map[string]any{"tiles": "osm"},
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("tiles", nil, w)
	})
	assertGolden(t, "tiles.golden", result, written)
}

func TestEngineCustomFilter(t *testing.T) {
	engine := embeddedEngine(t)
	shout := func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	}
	if err := engine.RegisterFilter("shout", shout); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", shout); err == nil {
		t.Fatal("expected duplicate filter name to be rejected")
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("route-label", map[string]any{"route": "costa"}, w)
	})
	assertGolden(t, "route-label.golden", result, written)
}

func TestEngineRendersInlineContent(t *testing.T) {
	engine := embeddedEngine(t)

	result, err := engine.Render(`Ruta: {{ route|trim }}`, map[string]any{"route": "  Spondylus  "})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if result != "Ruta: Spondylus" {
		t.Fatalf("expected %q, got %q", "Ruta: Spondylus", result)
	}
}

func TestEngineTemplateFuncsAreCallable(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS(t)),
		gotemplate.WithTemplateFunc(map[string]any{"upcase": strings.ToUpper}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.Render(`{{ upcase("cuenca") }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "CUENCA" {
		t.Fatalf("expected %q, got %q", "CUENCA", result)
	}
}

func TestEngineRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected engine construction to fail without a template source")
	}
}

func embeddedEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS(t)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func templatesFS(t *testing.T) fs.FS {
	t.Helper()

	fsys, err := fs.Sub(testTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}

func assertGolden(t *testing.T, golden, result, written string) {
	t.Helper()

	if result != written {
		t.Fatalf("writer copy diverges from return value\nreturned: %q\n written: %q", result, written)
	}
	testsupport.Golden(t, filepath.Join("testdata", golden), result)
}
