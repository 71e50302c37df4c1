package render

import (
	"strings"

	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

// Translation keys for the fixed popup strings.
const (
	PopupDefaultNameKey    = "popup.defaultName"
	PopupListingsLinkKey   = "popup.listingsLink"
	PopupDirectionsLinkKey = "popup.directionsLink"
	PopupWhatsAppLinkKey   = "popup.whatsappLink"
)

// LocalizePopupLabels returns labels with every translatable string resolved
// through opts.Translator for opts.Locale. Missing translations keep the
// incoming value and are reported through opts.OnMissing. With no translator
// or locale the labels pass through unchanged.
func LocalizePopupLabels(labels mapwidget.PopupLabels, opts RenderOptions) mapwidget.PopupLabels {
	if opts.Translator == nil || strings.TrimSpace(opts.Locale) == "" {
		return labels
	}

	labels.DefaultName = translate(opts, PopupDefaultNameKey, labels.DefaultName)
	labels.ListingsLink = translate(opts, PopupListingsLinkKey, labels.ListingsLink)
	labels.DirectionsLink = translate(opts, PopupDirectionsLinkKey, labels.DirectionsLink)
	labels.WhatsAppLink = translate(opts, PopupWhatsAppLinkKey, labels.WhatsAppLink)
	return labels
}

func translate(opts RenderOptions, key, current string) string {
	value, ok := opts.Translator.Translate(opts.Locale, key)
	if !ok || strings.TrimSpace(value) == "" {
		if opts.OnMissing != nil {
			opts.OnMissing(opts.Locale, key)
		}
		return current
	}
	return value
}
