package icons

// Canonical icon names used by the leaflet renderer and default registry.
// Category names match the marker categories found in map definition files.
const (
	NamePin       = "pin"
	NameComida    = "comida"
	NameHistorico = "historico"
	NameParque    = "parque"
	NameArtesania = "artesania"
)
