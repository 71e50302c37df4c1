package gotemplate

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-mapgen/pkg/geo"
)

var builtinFilters = map[string]pongo2.FilterFunction{
	"trim":  trimFilter,
	"coord": coordFilter,
}

// Filter names are global to pongo2, so registration skips names some other
// engine instance already claimed.
func registerBuiltinFilters() {
	for name, fn := range builtinFilters {
		if pongo2.FilterExists(name) {
			continue
		}
		_ = pongo2.RegisterFilter(name, fn)
	}
}

func trimFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// coordFilter renders numbers with the fixed precision the rest of the
// coordinate formatting uses. Non-numeric input falls back to fmt.Sprint.
func coordFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if f, ok := asFloat(in.Interface()); ok {
		return pongo2.AsValue(geo.FormatCoord(f)), nil
	}
	return pongo2.AsValue(fmt.Sprint(in.Interface())), nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
