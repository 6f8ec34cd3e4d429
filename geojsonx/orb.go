package geojsonx

import (
	"fmt"
	"math"

	"github.com/bsm/hexkit/geo"
	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go/v4"
)

// FromOrb adapts a raw orb geometry into a shape. The concrete type of
// the geometry picks the shape variant, only orb.Polygon and
// orb.MultiPolygon are supported.
func FromOrb(g orb.Geometry) (geo.Shape, error) {
	switch v := g.(type) {
	case orb.Polygon:
		poly, err := polygonFromOrb(v)
		if err != nil {
			return geo.Shape{}, err
		}
		return geo.SingleShape(poly), nil
	case orb.MultiPolygon:
		multi := make(geo.MultiPolygon, 0, len(v))
		for _, op := range v {
			poly, err := polygonFromOrb(op)
			if err != nil {
				return geo.Shape{}, err
			}
			multi = append(multi, poly)
		}
		return geo.MultiShape(multi), nil
	default:
		return geo.Shape{}, fmt.Errorf("%w: unsupported type %T", ErrMalformedGeo, g)
	}
}

// ToOrb adapts a shape into an orb geometry. Loops are emitted exactly
// as stored, winding order is not normalised.
func ToOrb(s geo.Shape) orb.Geometry {
	if p, ok := s.Single(); ok {
		return orbPolygon(p)
	}

	polys := s.Polygons()
	multi := make(orb.MultiPolygon, 0, len(polys))
	for _, p := range polys {
		multi = append(multi, orbPolygon(p))
	}
	return multi
}

func polygonFromOrb(p orb.Polygon) (geo.Polygon, error) {
	if len(p) == 0 {
		return geo.Polygon{}, fmt.Errorf("%w: polygon without rings", ErrMalformedGeo)
	}

	outer, err := loopFromRing(p[0])
	if err != nil {
		return geo.Polygon{}, err
	}
	var holes []geo.Loop
	for _, ring := range p[1:] {
		hole, err := loopFromRing(ring)
		if err != nil {
			return geo.Polygon{}, err
		}
		holes = append(holes, hole)
	}
	return geo.NewPolygon(outer, holes...)
}

// loopFromRing strips the closing vertex and swaps the coordinate
// order from (lng, lat) to (lat, lng).
func loopFromRing(ring orb.Ring) (geo.Loop, error) {
	if len(ring) < 4 {
		return nil, fmt.Errorf("%w: ring must have at least 4 positions, has %d", ErrMalformedGeo, len(ring))
	}
	if ring.Closed() {
		ring = ring[:len(ring)-1]
	}

	loop := make(geo.Loop, 0, len(ring))
	for _, pt := range ring {
		if !isFinite(pt[0]) || !isFinite(pt[1]) {
			return nil, fmt.Errorf("%w: non-finite coordinate", ErrMalformedGeo)
		}
		loop = append(loop, h3.LatLng{Lat: pt[1], Lng: pt[0]})
	}
	return loop, nil
}

func orbPolygon(p geo.Polygon) orb.Polygon {
	rings := make(orb.Polygon, 0, len(p.Holes())+1)
	rings = append(rings, ringFromLoop(p.Outer()))
	for _, hole := range p.Holes() {
		rings = append(rings, ringFromLoop(hole))
	}
	return rings
}

// ringFromLoop swaps the coordinate order back to (lng, lat) and
// appends the closing vertex.
func ringFromLoop(loop geo.Loop) orb.Ring {
	ring := make(orb.Ring, 0, len(loop)+1)
	for _, ll := range loop {
		ring = append(ring, orb.Point{ll.Lng, ll.Lat})
	}
	if len(ring) != 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
