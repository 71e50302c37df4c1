package render

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the widget model.
type RenderOptions struct {
	// Locale selects the language for the fixed popup and control strings.
	// Empty keeps the widget's configured labels.
	Locale string
	// Translator resolves label keys for Locale. Nil disables localization.
	Translator Translator
	// OnMissing is invoked when a key has no translation. Nil keeps the
	// current label silently.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved theme applied to widget chrome.
	Theme *ThemeConfig
	// AssetURLPrefix rebases emitted asset URLs (for example
	// "/static/mapgen"). Empty emits the renderer's defaults (CDN vendor
	// assets plus embedded runtime names).
	AssetURLPrefix string
	// OmitAssets suppresses stylesheet and script tags, leaving only the
	// widget fragment. Pages embedding several widgets emit the assets once
	// themselves.
	OmitAssets bool
}

// Translator resolves a translation key for a locale.
type Translator interface {
	Translate(locale, key string) (string, bool)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string) (string, bool)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string) (string, bool) {
	return f(locale, key)
}

// MissingTranslationHandler observes keys the translator could not resolve.
type MissingTranslationHandler func(locale, key string)

// ThemeConfig is the renderer-facing projection of a selected theme: the
// selection coordinates plus token values renderers emit as CSS custom
// properties on the widget container.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}
