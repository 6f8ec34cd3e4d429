package cells

import (
	"encoding/binary"

	"github.com/bsm/extsort"
	h3 "github.com/uber/h3-go/v4"
)

// SorterOptions define Sorter specific options.
type SorterOptions struct {
	// An optional temporary directory. Default: os.TempDir()
	TempDir string
}

func (o *SorterOptions) norm() *SorterOptions {
	var oo SorterOptions
	if o != nil {
		oo = *o
	}
	return &oo
}

// Sorter sorts large streams of cells, e.g. the combined output of
// several polyfill runs, spilling to disk when necessary. Duplicates
// are allowed on Append, they are collapsed by Sort.
type Sorter struct {
	x *extsort.Sorter
	t [8]byte
}

// NewSorter creates a sorter.
func NewSorter(o *SorterOptions) *Sorter {
	o = o.norm()
	return &Sorter{
		x: extsort.New(&extsort.Options{WorkDir: o.TempDir}),
	}
}

// Append appends a cell to the sorter.
func (s *Sorter) Append(c h3.Cell) error {
	if !c.IsValid() {
		return errInvalidCell
	}

	// valid cells have the high bit unset, byte-wise order is
	// therefore consistent with numeric order
	binary.BigEndian.PutUint64(s.t[:], uint64(c))
	return s.x.Append(s.t[:])
}

// Sort sorts appended cells and returns an iterator over the unique,
// ascending sequence.
func (s *Sorter) Sort() (*SorterIterator, error) {
	iter, err := s.x.Sort()
	if err != nil {
		return nil, err
	}
	return &SorterIterator{it: iter}, nil
}

// Close closes the sorter and releases all resources.
func (s *Sorter) Close() error {
	return s.x.Close()
}

// SorterIterator iterates over sorted, de-duplicated cells.
type SorterIterator struct {
	it   *extsort.Iterator
	cell h3.Cell
	ok   bool
}

// Next advances the iterator to the next unique cell.
func (i *SorterIterator) Next() bool {
	for i.it.Next() {
		c := h3.Cell(binary.BigEndian.Uint64(i.it.Data()))
		if i.ok && c == i.cell {
			continue
		}
		i.cell, i.ok = c, true
		return true
	}
	return false
}

// Cell returns the cell at the current position.
func (i *SorterIterator) Cell() h3.Cell {
	return i.cell
}

// Err returns any errors that occurred during iteration.
func (i *SorterIterator) Err() error {
	return i.it.Err()
}

// Close closes the iterator and releases resources.
func (i *SorterIterator) Close() error {
	return i.it.Close()
}
