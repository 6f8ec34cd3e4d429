package geo

import (
	"github.com/bsm/hexkit/cells"
	h3 "github.com/uber/h3-go/v4"
)

// maxTraceDepth limits the recursive edge subdivision. Bisecting a
// segment this often shrinks it far below the size of the smallest
// cell, remaining gaps are patched with a neighbour disk.
const maxTraceDepth = 48

// Cells returns the set of all cells at resolution res whose centroid
// lies inside the polygon. The result does not depend on the winding
// order of the polygon's loops.
func (p Polygon) Cells(res int) (cells.Set, error) {
	var sink setSink
	if err := p.CellsTo(&sink, res); err != nil {
		return nil, err
	}
	set := cells.Set(sink)
	set.Normalize()
	return set, nil
}

// CellsTo streams the covered cells at resolution res into sink, e.g.
// a cells.Sorter for fills that exceed memory. Every covered cell is
// emitted exactly once, in unspecified order.
func (p Polygon) CellsTo(sink CellSink, res int) error {
	if !validResolution(res) {
		return ErrInvalidResolution
	}
	return newFiller(p, res).run(sink)
}

// Cells returns the set of all cells at resolution res whose centroid
// lies inside any of the polygons.
func (m MultiPolygon) Cells(res int) (cells.Set, error) {
	var sink setSink
	if err := m.CellsTo(&sink, res); err != nil {
		return nil, err
	}
	set := cells.Set(sink)
	set.Normalize()
	return set, nil
}

// CellsTo streams the covered cells of every polygon into sink. Cells
// covered by more than one polygon are emitted once per polygon, the
// sink has to tolerate duplicates.
func (m MultiPolygon) CellsTo(sink CellSink, res int) error {
	if !validResolution(res) {
		return ErrInvalidResolution
	}
	for _, p := range m {
		if err := newFiller(p, res).run(sink); err != nil {
			return err
		}
	}
	return nil
}

// Cells returns the set of all cells at resolution res covered by the
// shape.
func (s Shape) Cells(res int) (cells.Set, error) {
	return s.polys.Cells(res)
}

// CellsTo streams the covered cells of the shape into sink.
func (s Shape) CellsTo(sink CellSink, res int) error {
	return s.polys.CellsTo(sink, res)
}

// --------------------------------------------------------------------

type setSink []h3.Cell

func (s *setSink) Append(c h3.Cell) error {
	*s = append(*s, c)
	return nil
}

// A filler performs a single polygon fill: it traces every loop of the
// polygon through the grid to build a crust of candidate cells, then
// floods inwards from the crust, admitting every cell whose centroid
// lies inside the polygon.
type filler struct {
	poly  Polygon
	res   int
	seen  map[h3.Cell]struct{}
	queue []h3.Cell
}

func newFiller(p Polygon, res int) *filler {
	return &filler{poly: p, res: res, seen: make(map[h3.Cell]struct{})}
}

func (f *filler) run(sink CellSink) error {
	crust := make(map[h3.Cell]struct{})
	if err := f.traceLoop(f.poly.outer, crust); err != nil {
		return err
	}
	for _, hole := range f.poly.holes {
		if err := f.traceLoop(hole, crust); err != nil {
			return err
		}
	}

	// seed with the crust cells and their immediate neighbours
	for c := range crust {
		if err := f.admit(c, sink); err != nil {
			return err
		}
		nbs, err := h3.GridDisk(c, 1)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if err := f.admit(nb, sink); err != nil {
				return err
			}
		}
	}

	// expand inwards
	for len(f.queue) != 0 {
		c := f.queue[len(f.queue)-1]
		f.queue = f.queue[:len(f.queue)-1]

		nbs, err := h3.GridDisk(c, 1)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if err := f.admit(nb, sink); err != nil {
				return err
			}
		}
	}
	return nil
}

// admit tests the centroid of a previously unseen cell against the
// polygon and, on success, emits the cell and queues it for expansion.
func (f *filler) admit(c h3.Cell, sink CellSink) error {
	if _, ok := f.seen[c]; ok {
		return nil
	}
	f.seen[c] = struct{}{}

	ll, err := h3.CellToLatLng(c)
	if err != nil {
		return err
	}
	if !f.poly.ContainsLatLng(ll) {
		return nil
	}
	if err := sink.Append(c); err != nil {
		return err
	}
	f.queue = append(f.queue, c)
	return nil
}

func (f *filler) traceLoop(loop Loop, crust map[h3.Cell]struct{}) error {
	if len(loop) < 3 {
		return nil
	}
	for i, j := 0, len(loop)-1; i < len(loop); j, i = i, i+1 {
		if err := f.traceEdge(loop[j], loop[i], crust, 0); err != nil {
			return err
		}
	}
	return nil
}

// traceEdge collects every cell crossed by the segment from a to b by
// bisecting it until both endpoints land in the same or in adjacent
// cells.
func (f *filler) traceEdge(a, b h3.LatLng, crust map[h3.Cell]struct{}, depth int) error {
	ca, err := h3.LatLngToCell(a, f.res)
	if err != nil {
		return err
	}
	cb, err := h3.LatLngToCell(b, f.res)
	if err != nil {
		return err
	}
	crust[ca] = struct{}{}
	crust[cb] = struct{}{}

	if ca == cb {
		return nil
	}
	if dist, err := h3.GridDistance(ca, cb); err == nil && dist <= 1 {
		return nil
	}
	if depth >= maxTraceDepth {
		// segment is microscopic at this point, patch the gap
		nbs, err := h3.GridDisk(ca, 1)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			crust[nb] = struct{}{}
		}
		return nil
	}

	mid := h3.LatLng{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
	if err := f.traceEdge(a, mid, crust, depth+1); err != nil {
		return err
	}
	return f.traceEdge(mid, b, crust, depth+1)
}
