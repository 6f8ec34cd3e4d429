// Package geojsonx adapts GeoJSON geometries to hexkit shapes and
// back. Polygon geometries map to single-polygon shapes, MultiPolygon
// geometries to multi-polygon shapes, every other geometry type is
// rejected.
package geojsonx

import (
	"errors"
	"fmt"

	"github.com/bsm/hexkit/cells"
	"github.com/bsm/hexkit/geo"
	"github.com/paulmach/orb/geojson"
)

// ErrMalformedGeo is returned when a geometry cannot be adapted: the
// geometry is not a Polygon or MultiPolygon, a ring is too short, or a
// coordinate is not a finite number.
var ErrMalformedGeo = errors.New("geojsonx: malformed geometry")

// Decode adapts a GeoJSON geometry into a shape. Structurally invalid
// geometries are rejected with ErrMalformedGeo, rings which collapse
// to fewer than three distinct vertices with geo.ErrInvalidLoop.
func Decode(g *geojson.Geometry) (geo.Shape, error) {
	if g == nil {
		return geo.Shape{}, fmt.Errorf("%w: no geometry", ErrMalformedGeo)
	}
	return FromOrb(g.Geometry())
}

// Encode adapts a shape into a GeoJSON geometry. Single-polygon shapes
// encode as Polygon, multi-polygon shapes as MultiPolygon.
func Encode(s geo.Shape) *geojson.Geometry {
	return geojson.NewGeometry(ToOrb(s))
}

// Cells decodes g and returns the set of cells covered by it at
// resolution res.
func Cells(g *geojson.Geometry, res int) (cells.Set, error) {
	shape, err := Decode(g)
	if err != nil {
		return nil, err
	}
	return shape.Cells(res)
}

// FromCells dissolves the set into a shape and encodes it as a GeoJSON
// geometry.
func FromCells(set cells.Set) (*geojson.Geometry, error) {
	shape, err := geo.Dissolve(set)
	if err != nil {
		return nil, err
	}
	return Encode(shape), nil
}
