package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	h3 "github.com/uber/h3-go/v4"
)

// Polygon is an immutable combination of one outer loop and zero or
// more hole loops. The space enclosed by a polygon is the space inside
// the outer loop minus the space inside its holes.
type Polygon struct {
	outer Loop
	holes []Loop
	rect  r2.Rect
}

// NewPolygon constructs a polygon from an outer loop and optional
// holes. Every loop must be valid as per Loop.IsValid, otherwise
// ErrInvalidLoop is returned. Holes are expected, but not verified, to
// lie inside the outer loop. The loops must not be modified after the
// call.
func NewPolygon(outer Loop, holes ...Loop) (Polygon, error) {
	if !outer.IsValid() {
		return Polygon{}, fmt.Errorf("%w: outer loop must have at least 3 distinct finite vertices", ErrInvalidLoop)
	}
	for n, hole := range holes {
		if !hole.IsValid() {
			return Polygon{}, fmt.Errorf("%w: hole #%d must have at least 3 distinct finite vertices", ErrInvalidLoop, n)
		}
	}
	return Polygon{outer: outer, holes: holes, rect: outer.bound()}, nil
}

// Outer returns the outer loop as a read-only view.
func (p Polygon) Outer() Loop {
	return p.outer
}

// Holes returns the hole loops as a read-only view.
func (p Polygon) Holes() []Loop {
	return p.holes
}

// ContainsLatLng reports whether ll lies inside the outer loop and
// outside every hole.
func (p Polygon) ContainsLatLng(ll h3.LatLng) bool {
	if !p.rect.ContainsPoint(r2.Point{X: ll.Lng, Y: ll.Lat}) {
		return false
	}
	if !p.outer.ContainsLatLng(ll) {
		return false
	}
	for _, hole := range p.holes {
		if hole.ContainsLatLng(ll) {
			return false
		}
	}
	return true
}

// String returns a compact "outer/holes" summary of the polygon's
// vertex counts.
func (p Polygon) String() string {
	counts := make([]string, len(p.holes))
	for i, hole := range p.holes {
		counts[i] = strconv.Itoa(len(hole))
	}
	return strconv.Itoa(len(p.outer)) + "/" + strings.Join(counts, ",")
}

// --------------------------------------------------------------------

// MultiPolygon is an ordered sequence of polygons. Iteration order is
// construction order.
type MultiPolygon []Polygon

// ContainsLatLng reports whether ll lies inside any of the polygons.
func (m MultiPolygon) ContainsLatLng(ll h3.LatLng) bool {
	for _, p := range m {
		if p.ContainsLatLng(ll) {
			return true
		}
	}
	return false
}

// String returns a compact summary of the sequence.
func (m MultiPolygon) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
