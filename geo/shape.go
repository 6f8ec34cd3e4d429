package geo

import (
	h3 "github.com/uber/h3-go/v4"
)

// Shape is a tagged union of the two shape variants: a single polygon
// or a multi-polygon. A value is always exactly one of the two and
// conversions preserve the variant instead of guessing it from the
// data.
type Shape struct {
	polys  MultiPolygon
	single bool
}

// SingleShape returns the single-polygon shape for p.
func SingleShape(p Polygon) Shape {
	return Shape{polys: MultiPolygon{p}, single: true}
}

// MultiShape returns the multi-polygon shape for m. An empty m is
// valid and represents the empty shape.
func MultiShape(m MultiPolygon) Shape {
	return Shape{polys: m}
}

// IsSingle reports whether the shape holds a single polygon.
func (s Shape) IsSingle() bool {
	return s.single
}

// Single returns the polygon of a single-polygon shape.
func (s Shape) Single() (Polygon, bool) {
	if s.single {
		return s.polys[0], true
	}
	return Polygon{}, false
}

// Polygons returns the polygons of the shape: exactly one for the
// single variant, any number for the multi variant.
func (s Shape) Polygons() MultiPolygon {
	return s.polys
}

// ContainsLatLng reports whether ll lies inside the shape.
func (s Shape) ContainsLatLng(ll h3.LatLng) bool {
	return s.polys.ContainsLatLng(ll)
}

// String returns a compact summary of the shape.
func (s Shape) String() string {
	if s.single {
		return s.polys[0].String()
	}
	return s.polys.String()
}
