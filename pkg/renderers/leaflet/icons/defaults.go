package icons

// pinMarkup is the shared teardrop outline. Categories are told apart by
// color, applied through the descriptor class name.
const pinMarkup = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 44" width="32" height="44" aria-hidden="true" focusable="false"><path fill="currentColor" stroke="#fff" stroke-width="1.5" d="M16 1.5C8.1 1.5 1.8 7.8 1.8 15.7 1.8 26.4 16 42.5 16 42.5s14.2-16.1 14.2-26.8C30.2 7.8 23.9 1.5 16 1.5z"/><circle cx="16" cy="15.7" r="5.2" fill="#fff"/></svg>`

// NewDefaultRegistry constructs a registry pre-populated with the marker
// categories used by the listings maps, plus the fallback pin.
func NewDefaultRegistry() *Registry {
	registry := New()

	for _, name := range []string{NamePin, NameComida, NameHistorico, NameParque, NameArtesania} {
		registry.MustRegister(name, Descriptor{
			ClassName:   "mapgen-icon mapgen-icon-" + name,
			Markup:      pinMarkup,
			Size:        [2]int{32, 44},
			Anchor:      [2]int{16, 43},
			PopupAnchor: [2]int{0, -38},
		})
	}

	return registry
}
