// Package tui drives a coordinate picking session from the terminal. It
// fills the same coordinate fields the browser picker writes, so forms can be
// completed over SSH or in provisioning scripts where no browser exists.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
	"github.com/goliatone/go-mapgen/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven picking sessions.
type Renderer struct {
	driver PromptDriver
	labels Labels
}

// New constructs a TUI renderer with defaults (survey driver, Spanish labels).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{labels: Labels{}.withDefaults()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.driver == nil {
		driver, err := newSurveyDriver()
		if err != nil {
			return nil, err
		}
		r.driver = driver
	}

	return r, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType returns the MIME type of the coordinate payload.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render runs a picking session for picker widgets and emits the resulting
// coordinate fields as JSON, keyed by field id with six-decimal values. The
// session starts at the widget's current position.
func (r *Renderer) Render(ctx context.Context, widget mapwidget.Widget, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: nil context")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: no prompt driver configured")
	}

	picker, ok := widget.(*mapwidget.Picker)
	if !ok {
		return nil, fmt.Errorf("tui: unsupported widget %T", widget)
	}

	if err := r.pick(ctx, picker); err != nil {
		return nil, err
	}

	lat, lng := picker.FieldValues()
	opts := picker.Options()
	payload := map[string]string{
		opts.LatFieldID: lat,
		opts.LngFieldID: lng,
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tui: marshal field payload: %w", err)
	}
	return out, nil
}

// PickLocation runs an interactive session over a fresh picker built from
// opts and returns it with the confirmed position applied.
func (r *Renderer) PickLocation(ctx context.Context, opts mapwidget.PickerOptions) (*mapwidget.Picker, error) {
	if ctx == nil {
		return nil, errors.New("tui: nil context")
	}
	picker := mapwidget.NewPicker(opts)
	if err := r.pick(ctx, picker); err != nil {
		return nil, err
	}
	return picker, nil
}

func (r *Renderer) pick(ctx context.Context, picker *mapwidget.Picker) error {
	for {
		lat, err := r.promptCoordinate(ctx, r.labels.Latitude, picker.Position().Lat, validateLatitude)
		if err != nil {
			return err
		}
		lng, err := r.promptCoordinate(ctx, r.labels.Longitude, picker.Position().Lng, validateLongitude)
		if err != nil {
			return err
		}

		picker.Click(geo.LatLng{Lat: lat, Lng: lng})
		latValue, lngValue := picker.FieldValues()

		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s (%s, %s)", r.labels.Confirm, latValue, lngValue),
			Default: true,
		})
		if err != nil {
			return err
		}
		if ok {
			return r.driver.Info(ctx, fmt.Sprintf("%s %s, %s", r.labels.Picked, latValue, lngValue))
		}
	}
}

func (r *Renderer) promptCoordinate(ctx context.Context, label string, current float64, validate func(float64) error) (float64, error) {
	response, err := r.driver.Input(ctx, InputConfig{
		Message: label,
		Default: geo.FormatCoord(current),
		Validator: func(raw string) error {
			_, err := parseCoordinate(raw, validate)
			return err
		},
	})
	if err != nil {
		return 0, err
	}
	return parseCoordinate(response, validate)
}

func parseCoordinate(raw string, validate func(float64) error) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("introduce un número decimal")
	}
	if err := validate(value); err != nil {
		return 0, err
	}
	return value, nil
}

func validateLatitude(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < -90 || value > 90 {
		return errors.New("la latitud debe estar entre -90 y 90")
	}
	return nil
}

func validateLongitude(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < -180 || value > 180 {
		return errors.New("la longitud debe estar entre -180 y 180")
	}
	return nil
}
