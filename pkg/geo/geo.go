// Package geo provides the coordinate primitives shared by the map widgets:
// latitude/longitude pairs, polyline paths, and geodesic bounds used to fit
// map views around markers and routes.
package geo

import (
	"math"
	"strconv"
)

// CoordPrecision is the number of decimals used when writing coordinates into
// form fields. Six decimals keep roughly 0.1m of precision, which is what the
// listing forms store.
const CoordPrecision = 6

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Valid reports whether both components are finite numbers. Widgets skip
// coordinates that fail this check instead of erroring.
func (l LatLng) Valid() bool {
	return isFinite(l.Lat) && isFinite(l.Lng)
}

// Path is an ordered sequence of coordinates describing a route polyline.
type Path []LatLng

// Clean returns the path with invalid points removed, preserving order. The
// original slice is never mutated.
func (p Path) Clean() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, 0, len(p))
	for _, point := range p {
		if point.Valid() {
			out = append(out, point)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Drawable reports whether the path has enough valid points to form a
// polyline.
func (p Path) Drawable() bool {
	count := 0
	for _, point := range p {
		if point.Valid() {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// FormatCoord renders a coordinate component with exactly CoordPrecision
// decimals, matching what the browser runtime writes via toFixed.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', CoordPrecision, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
