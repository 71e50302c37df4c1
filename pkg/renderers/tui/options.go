package tui

// Labels holds the prompt texts shown during a picking session.
type Labels struct {
	Latitude  string
	Longitude string
	Confirm   string
	Picked    string
}

func (l Labels) withDefaults() Labels {
	if l.Latitude == "" {
		l.Latitude = "Latitud"
	}
	if l.Longitude == "" {
		l.Longitude = "Longitud"
	}
	if l.Confirm == "" {
		l.Confirm = "¿Usar esta ubicación?"
	}
	if l.Picked == "" {
		l.Picked = "Ubicación seleccionada:"
	}
	return l
}

// Option adjusts the renderer during construction.
type Option func(*Renderer)

// WithPromptDriver swaps the terminal interaction backend, which tests use
// to script answers.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithLabels overrides the prompt texts. Empty fields keep their defaults.
func WithLabels(labels Labels) Option {
	return func(r *Renderer) {
		r.labels = labels.withDefaults()
	}
}
