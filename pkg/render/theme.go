package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

const themeVarPrefix = "--mapgen-"

// ThemeFromSelection projects a go-theme selection into the ThemeConfig
// renderers consume. Manifest tokens become --mapgen-* CSS custom properties
// keyed by the lowercased token name. A nil selection yields nil.
func ThemeFromSelection(selection *theme.Selection) *ThemeConfig {
	if selection == nil {
		return nil
	}

	cfg := &ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	if selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
		return cfg
	}

	cfg.Tokens = make(map[string]string, len(selection.Manifest.Tokens))
	cfg.CSSVars = make(map[string]string, len(selection.Manifest.Tokens))
	for name, value := range selection.Manifest.Tokens {
		cfg.Tokens[name] = value
		cfg.CSSVars[themeVarPrefix+cssVarName(name)] = value
	}
	return cfg
}

func cssVarName(token string) string {
	name := strings.ToLower(strings.TrimSpace(token))
	name = strings.ReplaceAll(name, ".", "-")
	name = strings.ReplaceAll(name, " ", "-")
	return name
}
