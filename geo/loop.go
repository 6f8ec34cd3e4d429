package geo

import (
	"math"

	"github.com/golang/geo/r2"
	h3 "github.com/uber/h3-go/v4"
)

// Loop is an open ring of geographic vertices. The last vertex
// implicitly connects back to the first, a closing vertex is never
// stored. Winding order carries no meaning for containment tests.
type Loop []h3.LatLng

// IsValid reports whether the loop consists of finite coordinates and
// has at least three distinct vertices.
func (l Loop) IsValid() bool {
	if len(l) < 3 {
		return false
	}

	distinct := make([]h3.LatLng, 0, 3)
	for _, ll := range l {
		if !isFinite(ll) {
			return false
		}
		if len(distinct) < 3 && !hasVertex(distinct, ll) {
			distinct = append(distinct, ll)
		}
	}
	return len(distinct) == 3
}

// ContainsLatLng reports whether ll lies inside the loop, using the
// even-odd ray crossing rule in the lat/lng plane. The result does not
// depend on the loop's winding order. Points exactly on the boundary
// may be reported as either inside or outside.
func (l Loop) ContainsLatLng(ll h3.LatLng) bool {
	if len(l) < 3 {
		return false
	}

	inside := false
	for i, j := 0, len(l)-1; i < len(l); j, i = i, i+1 {
		vi, vj := l[i], l[j]
		if (vi.Lat > ll.Lat) == (vj.Lat > ll.Lat) {
			continue
		}
		if ll.Lng < (vj.Lng-vi.Lng)*(ll.Lat-vi.Lat)/(vj.Lat-vi.Lat)+vi.Lng {
			inside = !inside
		}
	}
	return inside
}

// Area returns the loop's signed area in the lng/lat plane, in square
// degrees. Positive area means counter-clockwise winding.
func (l Loop) Area() float64 {
	var sum float64
	for i, j := 0, len(l)-1; i < len(l); j, i = i, i+1 {
		sum += l[j].Lng*l[i].Lat - l[i].Lng*l[j].Lat
	}
	return sum / 2
}

// IsCCW reports whether the loop winds counter-clockwise.
func (l Loop) IsCCW() bool {
	return l.Area() > 0
}

// Reversed returns a copy of the loop with inverted winding.
func (l Loop) Reversed() Loop {
	res := make(Loop, len(l))
	for i, ll := range l {
		res[len(l)-1-i] = ll
	}
	return res
}

// bound returns the loop's bounding rectangle, mapping X to longitude
// and Y to latitude.
func (l Loop) bound() r2.Rect {
	rect := r2.EmptyRect()
	for _, ll := range l {
		rect = rect.AddPoint(r2.Point{X: ll.Lng, Y: ll.Lat})
	}
	return rect
}

func isFinite(ll h3.LatLng) bool {
	return !math.IsNaN(ll.Lat) && !math.IsInf(ll.Lat, 0) &&
		!math.IsNaN(ll.Lng) && !math.IsInf(ll.Lng, 0)
}

func hasVertex(list []h3.LatLng, ll h3.LatLng) bool {
	for _, v := range list {
		if v == ll {
			return true
		}
	}
	return false
}
