package gotemplate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// buildContext turns arbitrary data into a pongo2 context. Maps pass through
// with their values normalized; anything else round-trips through JSON so
// structs and typed slices render the same way they serialize.
func buildContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return contextFromMap(map[string]any(v))
	case map[string]any:
		return contextFromMap(v)
	default:
		decoded, err := roundTrip(v)
		if err != nil {
			return nil, err
		}
		entries, ok := decoded.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("gotemplate: context data must encode to an object, got %T", data)
		}
		return contextFromMap(entries)
	}
}

// contextFromMap copies the top-level entries, trimming keys and dropping
// any that trim to nothing.
func contextFromMap(in map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		normalized, err := normalizeValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = normalized
	}
	return out, nil
}

// normalizeValue flattens nested values so templates only ever see plain
// maps, slices, and JSON scalars. Callables pass through untouched.
func normalizeValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if callable(value) {
		return value, nil
	}

	switch v := value.(type) {
	case pongo2.Context:
		return normalizeMap(map[string]any(v))
	case map[string]any:
		return normalizeMap(v)
	case []any:
		return normalizeSlice(v)
	default:
		decoded, err := roundTrip(v)
		if err != nil {
			return nil, err
		}
		switch d := decoded.(type) {
		case map[string]any:
			return normalizeMap(d)
		case []any:
			return normalizeSlice(d)
		default:
			return d, nil
		}
	}
}

func normalizeMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, value := range in {
		normalized, err := normalizeValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = normalized
	}
	return out, nil
}

func normalizeSlice(in []any) ([]any, error) {
	out := make([]any, 0, len(in))
	for _, value := range in {
		normalized, err := normalizeValue(value)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

func roundTrip(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func callable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}
