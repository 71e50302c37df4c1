package mapwidget

// PopupLabels are the fixed strings a popup renders around the
// descriptor-supplied content. Defaults are Spanish, matching the deployments
// this library grew out of; use render.LocalizePopupLabels to translate them.
type PopupLabels struct {
	// DefaultName replaces an empty marker name.
	DefaultName string
	// ListingsLink is the text of the route listings link.
	ListingsLink string
	// DirectionsLink is the text of the external maps link.
	DirectionsLink string
	// WhatsAppLink is the text of the messaging link.
	WhatsAppLink string
}

// DefaultPopupLabels returns the stock Spanish labels.
func DefaultPopupLabels() PopupLabels {
	return PopupLabels{
		DefaultName:    "Negocio",
		ListingsLink:   "Ver ruta",
		DirectionsLink: "Cómo llegar",
		WhatsAppLink:   "WhatsApp",
	}
}

func (l PopupLabels) withDefaults() PopupLabels {
	defaults := DefaultPopupLabels()
	if l.DefaultName == "" {
		l.DefaultName = defaults.DefaultName
	}
	if l.ListingsLink == "" {
		l.ListingsLink = defaults.ListingsLink
	}
	if l.DirectionsLink == "" {
		l.DirectionsLink = defaults.DirectionsLink
	}
	if l.WhatsAppLink == "" {
		l.WhatsAppLink = defaults.WhatsAppLink
	}
	return l
}
