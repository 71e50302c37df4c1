package geo

import "github.com/golang/geo/s2"

// Bounds is a geodesic bounding rectangle. The zero value is unusable; start
// from NewBounds and grow it with Extend/ExtendPath.
type Bounds struct {
	rect s2.Rect
}

// NewBounds returns an empty bounds that contains no points.
func NewBounds() Bounds {
	return Bounds{rect: s2.EmptyRect()}
}

// Extend returns the bounds grown to include the point. Invalid points leave
// the bounds unchanged.
func (b Bounds) Extend(point LatLng) Bounds {
	if !point.Valid() {
		return b
	}
	return Bounds{rect: b.rect.AddPoint(s2.LatLngFromDegrees(point.Lat, point.Lng))}
}

// ExtendPath returns the bounds grown to include every valid point on the
// path.
func (b Bounds) ExtendPath(path Path) Bounds {
	out := b
	for _, point := range path {
		out = out.Extend(point)
	}
	return out
}

// IsEmpty reports whether the bounds contain no points.
func (b Bounds) IsEmpty() bool {
	return b.rect.IsEmpty()
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() LatLng {
	c := b.rect.Center()
	return LatLng{Lat: c.Lat.Degrees(), Lng: c.Lng.Degrees()}
}

// SouthWest returns the lower corner of the bounds.
func (b Bounds) SouthWest() LatLng {
	lo := b.rect.Lo()
	return LatLng{Lat: lo.Lat.Degrees(), Lng: lo.Lng.Degrees()}
}

// NorthEast returns the upper corner of the bounds.
func (b Bounds) NorthEast() LatLng {
	hi := b.rect.Hi()
	return LatLng{Lat: hi.Lat.Degrees(), Lng: hi.Lng.Degrees()}
}

// ContainsPoint reports whether the point lies within the bounds.
func (b Bounds) ContainsPoint(point LatLng) bool {
	if !point.Valid() {
		return false
	}
	return b.rect.ContainsLatLng(s2.LatLngFromDegrees(point.Lat, point.Lng))
}
