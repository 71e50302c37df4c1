package orchestrator

import (
	"context"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
)

type themeQuery struct {
	name    string
	variant string
}

// scriptedSelector hands back a fixed selection (or error) and records what
// the orchestrator asked for.
type scriptedSelector struct {
	selection *theme.Selection
	err       error
	queries   []themeQuery
}

func (s *scriptedSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.queries = append(s.queries, themeQuery{name, variant})
	return s.selection, s.err
}

func costaSelection() *theme.Selection {
	return &theme.Selection{
		Theme:   "costa",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "costa",
			Version: "1.0.0",
			Tokens: map[string]string{
				"brand": "#123456",
			},
		},
	}
}

func TestGenerateResolvesRequestedTheme(t *testing.T) {
	capture := &captureRenderer{}
	selector := &scriptedSelector{selection: costaSelection()}
	orch := captureOrchestrator(capture, WithThemeSelector(selector))

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios", ThemeName: "costa", ThemeVariant: "dark"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.queries) != 1 || selector.queries[0] != (themeQuery{name: "costa", variant: "dark"}) {
		t.Fatalf("unexpected selector calls: %v", selector.queries)
	}
	cfg := capture.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config")
	}
	if cfg.Theme != "costa" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection coordinates: %+v", cfg)
	}
	if cfg.CSSVars["--mapgen-brand"] != "#123456" {
		t.Fatalf("expected css var derived from token, got %v", cfg.CSSVars)
	}
}

func TestGenerateUsesDefaultTheme(t *testing.T) {
	capture := &captureRenderer{}
	selector := &scriptedSelector{selection: costaSelection()}
	orch := captureOrchestrator(capture,
		WithThemeSelector(selector),
		WithDefaultTheme("costa", "dark"),
	)

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.queries) != 1 || selector.queries[0] != (themeQuery{name: "costa", variant: "dark"}) {
		t.Fatalf("expected default theme selection, got %v", selector.queries)
	}
}

func TestGenerateUsesFixedSelection(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture, WithThemeSelection(costaSelection()))

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.options.Theme == nil || capture.options.Theme.Theme != "costa" {
		t.Fatalf("expected fixed selection applied, got %+v", capture.options.Theme)
	}
}

func TestGenerateThemeWithoutSelector(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture)

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios", ThemeName: "costa"}); err == nil {
		t.Fatal("expected error when no selector is configured")
	}
}

func TestGenerateThemeSelectorFailure(t *testing.T) {
	capture := &captureRenderer{}
	selector := &scriptedSelector{err: errors.New("boom")}
	orch := captureOrchestrator(capture, WithThemeSelector(selector))

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios", ThemeName: "costa"}); err == nil {
		t.Fatal("expected selector failure to propagate")
	}
}

func TestGenerateNoThemeByDefault(t *testing.T) {
	capture := &captureRenderer{}
	orch := captureOrchestrator(capture)

	if _, err := orch.Generate(context.Background(), Request{MapID: "negocios"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.options.Theme != nil {
		t.Fatalf("expected no theme, got %+v", capture.options.Theme)
	}
}
