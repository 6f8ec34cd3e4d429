package geo

import (
	"fmt"
	"math"
	"sort"

	"github.com/bsm/hexkit/cells"
	h3 "github.com/uber/h3-go/v4"
)

// vertexScale quantises boundary vertices to a 1e-9 degree grid, about
// 0.1mm on the ground, when matching the edges of neighbouring cells.
const vertexScale = 1e9

// Dissolve converts a set of cells into the shape that covers exactly
// the same space: neighbouring cells are merged into polygons, fully
// enclosed gaps become holes. The result is a single-polygon shape
// when the set dissolves into one polygon, a multi-polygon shape
// otherwise. Outer loops wind counter-clockwise, holes clockwise.
//
// The set must be normalised, all cells must be valid and share a
// single resolution, and every cell boundary must stitch cleanly into
// closed loops, otherwise ErrUnsupportedCellSet is returned. The same
// set always dissolves into the same shape, with polygons ordered by
// their smallest cell and loops starting at their south-westernmost
// vertex.
func Dissolve(set cells.Set) (Shape, error) {
	if len(set) == 0 {
		return MultiShape(nil), nil
	}

	for i, c := range set {
		if !c.IsValid() {
			return Shape{}, fmt.Errorf("%w: invalid cell index %d", ErrUnsupportedCellSet, int64(c))
		}
		if i != 0 && c <= set[i-1] {
			return Shape{}, fmt.Errorf("%w: cells must be normalised", ErrUnsupportedCellSet)
		}
	}
	if _, ok := set.Resolution(); !ok {
		return Shape{}, fmt.Errorf("%w: cells must share a single resolution", ErrUnsupportedCellSet)
	}

	comps, err := components(set)
	if err != nil {
		return Shape{}, err
	}

	polys := make(MultiPolygon, 0, len(comps))
	for _, comp := range comps {
		poly, err := dissolveComponent(comp)
		if err != nil {
			return Shape{}, err
		}
		polys = append(polys, poly)
	}

	if len(polys) == 1 {
		return SingleShape(polys[0]), nil
	}
	return MultiShape(polys), nil
}

// components splits the set into maximal edge-connected components,
// ordered by their smallest cell.
func components(set cells.Set) ([]cells.Set, error) {
	seen := make(map[h3.Cell]struct{}, len(set))
	var comps []cells.Set

	for _, c := range set {
		if _, ok := seen[c]; ok {
			continue
		}

		comp := cells.Set{}
		queue := []h3.Cell{c}
		seen[c] = struct{}{}
		for len(queue) != 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			comp = append(comp, cur)

			nbs, err := h3.GridDisk(cur, 1)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnsupportedCellSet, err)
			}
			for _, nb := range nbs {
				if nb == cur || !set.Contains(nb) {
					continue
				}
				if _, ok := seen[nb]; ok {
					continue
				}
				seen[nb] = struct{}{}
				queue = append(queue, nb)
			}
		}
		comp.Normalize()
		comps = append(comps, comp)
	}
	return comps, nil
}

// dissolveComponent turns a single connected component into a polygon
// with holes.
func dissolveComponent(comp cells.Set) (Polygon, error) {
	edges, err := boundaryEdges(comp)
	if err != nil {
		return Polygon{}, err
	}

	loops, err := stitchLoops(edges)
	if err != nil {
		return Polygon{}, err
	}

	// cell boundaries wind counter-clockwise, so the outer loop keeps
	// that winding while enclosed gaps come out clockwise
	var outer Loop
	var holes []Loop
	for _, loop := range loops {
		if loop.IsCCW() {
			if outer != nil {
				return Polygon{}, fmt.Errorf("%w: multiple outer loops in one component", ErrUnsupportedCellSet)
			}
			outer = loop
		} else {
			holes = append(holes, loop)
		}
	}
	if outer == nil {
		return Polygon{}, fmt.Errorf("%w: component without an outer loop", ErrUnsupportedCellSet)
	}

	sort.Slice(holes, func(i, j int) bool { return lessLatLng(holes[i][0], holes[j][0]) })
	return NewPolygon(outer, holes...)
}

// --------------------------------------------------------------------

type vertexKey struct {
	lat, lng int64
}

func quantize(ll h3.LatLng) vertexKey {
	return vertexKey{
		lat: int64(math.Round(ll.Lat * vertexScale)),
		lng: int64(math.Round(ll.Lng * vertexScale)),
	}
}

func lessVertexKey(a, b vertexKey) bool {
	if a.lat != b.lat {
		return a.lat < b.lat
	}
	return a.lng < b.lng
}

type edgeKey struct {
	from, to vertexKey
}

func lessEdgeKey(a, b edgeKey) bool {
	if a.from != b.from {
		return lessVertexKey(a.from, b.from)
	}
	return lessVertexKey(a.to, b.to)
}

func lessLatLng(a, b h3.LatLng) bool {
	if a.Lat != b.Lat {
		return a.Lat < b.Lat
	}
	return a.Lng < b.Lng
}

// boundaryEdges returns the directed edges that separate cells inside
// the component from the outside. Edges shared by two member cells
// appear once per direction and cancel each other out.
func boundaryEdges(comp cells.Set) (map[edgeKey]h3.LatLng, error) {
	edges := make(map[edgeKey]h3.LatLng)
	for _, c := range comp {
		bnd, err := c.Boundary()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedCellSet, err)
		}

		for i, n := 0, len(bnd); i < n; i++ {
			from, to := bnd[i], bnd[(i+1)%n]
			kf, kt := quantize(from), quantize(to)
			if kf == kt { // degenerate after quantisation
				continue
			}

			if _, ok := edges[edgeKey{from: kt, to: kf}]; ok {
				delete(edges, edgeKey{from: kt, to: kf})
				continue
			}
			key := edgeKey{from: kf, to: kt}
			if _, ok := edges[key]; ok {
				return nil, fmt.Errorf("%w: duplicate boundary edge", ErrUnsupportedCellSet)
			}
			edges[key] = from
		}
	}
	return edges, nil
}

// stitchLoops chains directed edges into closed loops. In a hexagonal
// tiling every boundary vertex has exactly one outgoing and one
// incoming boundary edge, which makes the chaining unambiguous.
func stitchLoops(edges map[edgeKey]h3.LatLng) ([]Loop, error) {
	next := make(map[vertexKey]edgeKey, len(edges))
	starts := make([]edgeKey, 0, len(edges))
	for key := range edges {
		if _, ok := next[key.from]; ok {
			return nil, fmt.Errorf("%w: ambiguous boundary at vertex", ErrUnsupportedCellSet)
		}
		next[key.from] = key
		starts = append(starts, key)
	}
	sort.Slice(starts, func(i, j int) bool { return lessEdgeKey(starts[i], starts[j]) })

	visited := make(map[edgeKey]struct{}, len(edges))
	var loops []Loop
	for _, start := range starts {
		if _, ok := visited[start]; ok {
			continue
		}

		var loop Loop
		for key := start; ; {
			if _, ok := visited[key]; ok {
				return nil, fmt.Errorf("%w: boundary loop does not close", ErrUnsupportedCellSet)
			}
			visited[key] = struct{}{}
			loop = append(loop, edges[key])

			nkey, ok := next[key.to]
			if !ok {
				return nil, fmt.Errorf("%w: dangling boundary edge", ErrUnsupportedCellSet)
			}
			if nkey == start {
				break
			}
			key = nkey
		}
		if len(loop) < 3 {
			return nil, fmt.Errorf("%w: degenerate boundary loop", ErrUnsupportedCellSet)
		}
		loops = append(loops, canonical(loop))
	}
	return loops, nil
}

// canonical rotates the loop to start at its south-westernmost vertex,
// making the output independent of the traversal entry point.
func canonical(loop Loop) Loop {
	min := 0
	for i := 1; i < len(loop); i++ {
		if lessLatLng(loop[i], loop[min]) {
			min = i
		}
	}
	if min == 0 {
		return loop
	}

	res := make(Loop, 0, len(loop))
	res = append(res, loop[min:]...)
	res = append(res, loop[:min]...)
	return res
}
