package mapwidget

import (
	"html"
	"net/url"
	"strings"
)

// EscapeText neutralizes text for inclusion in popup markup. It replaces the
// five HTML metacharacters (& < > " ') with their entities and leaves
// everything else untouched, so parsed markup reproduces the original text
// exactly.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// BuildPopupHTML assembles the popup markup for a marker. Every
// descriptor-supplied string passes through EscapeText before insertion; the
// fixed structure around it comes from opts.Labels.
//
// The popup always carries the (possibly defaulted) name, the route line, and
// a listings link filtered by the route. The external maps link and the
// messaging link appear only when the marker provides them.
func BuildPopupHTML(m Marker, opts PublicMapOptions) string {
	return buildPopupHTML(m, opts.normalize())
}

func buildPopupHTML(m Marker, opts PublicMapOptions) string {
	var b strings.Builder
	b.WriteString(`<div class="mapgen-popup">`)

	b.WriteString(`<strong>`)
	b.WriteString(EscapeText(m.DisplayName(opts.Labels.DefaultName)))
	b.WriteString(`</strong>`)

	b.WriteString(`<br><span class="mapgen-popup-route">`)
	b.WriteString(EscapeText(m.Route))
	b.WriteString(`</span>`)

	b.WriteString(`<br><a class="mapgen-popup-link" href="`)
	b.WriteString(EscapeText(listingsURL(opts.ListingsBasePath, opts.RouteParam, m.Route)))
	b.WriteString(`">`)
	b.WriteString(EscapeText(opts.Labels.ListingsLink))
	b.WriteString(`</a>`)

	if m.ExternalMapURL != "" {
		b.WriteString(`<br><a class="mapgen-popup-link" href="`)
		b.WriteString(EscapeText(m.ExternalMapURL))
		b.WriteString(`" target="_blank" rel="noopener">`)
		b.WriteString(EscapeText(opts.Labels.DirectionsLink))
		b.WriteString(`</a>`)
	}

	if m.WhatsAppPhone != "" {
		b.WriteString(`<br><a class="mapgen-popup-link" href="`)
		b.WriteString(EscapeText(whatsAppURL(m.WhatsAppPhone)))
		b.WriteString(`" target="_blank" rel="noopener">`)
		b.WriteString(EscapeText(opts.Labels.WhatsAppLink))
		b.WriteString(`</a>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

func listingsURL(basePath, param, route string) string {
	values := url.Values{}
	values.Set(param, route)
	return basePath + "?" + values.Encode()
}

// whatsAppURL builds the wa.me link. The service rejects the "+" prefix, so
// exactly one leading "+" is stripped; the rest of the number is kept as
// provided.
func whatsAppURL(phone string) string {
	return "https://wa.me/" + strings.TrimPrefix(phone, "+")
}
