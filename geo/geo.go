// Package geo converts polygonal shapes on the globe into sets of H3
// cells and back. A polygon covers a cell iff it contains the cell's
// centroid, which makes the two directions consistent: dissolving a
// filled cell set and filling the dissolved shape returns the original
// set.
//
// Coordinates are plain latitude/longitude degrees and edges are
// straight lines in the lat/lng plane. Shapes that cross the
// antimeridian or contain a pole are not supported.
package geo

import (
	"errors"

	h3 "github.com/uber/h3-go/v4"
)

// Resolution bounds of the H3 grid.
const (
	MinResolution = 0
	MaxResolution = 15
)

var (
	// ErrInvalidLoop is returned when a loop has fewer than three
	// distinct vertices or contains non-finite coordinates.
	ErrInvalidLoop = errors.New("geo: invalid loop")

	// ErrInvalidResolution is returned when a resolution is outside
	// the supported range.
	ErrInvalidResolution = errors.New("geo: invalid resolution")

	// ErrUnsupportedCellSet is returned by Dissolve when a cell set
	// cannot be traced into a consistent set of boundary loops.
	ErrUnsupportedCellSet = errors.New("geo: unsupported cell set")
)

// CellSink receives cells emitted by the fill engine.
// *cells.Sorter implements it.
type CellSink interface {
	Append(c h3.Cell) error
}

func validResolution(res int) bool {
	return res >= MinResolution && res <= MaxResolution
}
