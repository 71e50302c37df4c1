// Package mapwidget holds the headless models behind the map widgets: the
// coordinate picker and the public multi-marker map. Both resolve their full
// behavior (marker placement, popup markup, view fitting, field values) in Go
// so the contracts stay testable without a browser; renderers serialize the
// resolved state and a small embedded runtime applies it client-side.
package mapwidget

// Widget kinds as carried in rendered markup and bootstrap payloads.
const (
	KindPicker = "picker"
	KindPublic = "public"
)

// Widget is the closed set of models the renderer registry accepts.
type Widget interface {
	// Kind returns the widget discriminator, one of KindPicker or KindPublic.
	Kind() string
}
