// Package cells provides utilities for working with sets of H3 cells:
// normalised ascending sets with basic set algebra, and a disk-backed
// sorter for cell streams that are too large to hold in memory.
package cells

import "errors"

var errInvalidCell = errors.New("cells: invalid cell index")
