package cells

import (
	"sort"
	"strings"

	h3 "github.com/uber/h3-go/v4"
)

// Set is a set of H3 cells, stored as an ascending, duplicate-free
// slice. The zero value is an empty set, ready for use. Sets returned
// by functions in this package are always normalised; sets built by
// hand must be normalised via Normalize before any of the set
// operations are used.
type Set []h3.Cell

// SetFromCells returns a normalised set of all cells in list, leaving
// the input untouched.
func SetFromCells(list []h3.Cell) Set {
	set := make(Set, len(list))
	copy(set, list)
	set.Normalize()
	return set
}

// Normalize sorts the set and removes duplicates, in place.
func (s *Set) Normalize() {
	list := *s
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })

	out := list[:0]
	var last h3.Cell
	for i, c := range list {
		if i != 0 && c == last {
			continue
		}
		out = append(out, c)
		last = c
	}
	*s = out
}

// Contains reports whether the set contains c.
func (s Set) Contains(c h3.Cell) bool {
	i := s.search(c)
	return i < len(s) && s[i] == c
}

// Union returns a new set with all cells that are in s, in o, or in
// both.
func (s Set) Union(o Set) Set {
	res := make(Set, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			res = append(res, s[i])
			i++
		case s[i] > o[j]:
			res = append(res, o[j])
			j++
		default:
			res = append(res, s[i])
			i++
			j++
		}
	}
	res = append(res, s[i:]...)
	res = append(res, o[j:]...)
	return res
}

// Intersect returns a new set with all cells that are in both s and o.
func (s Set) Intersect(o Set) Set {
	res := make(Set, 0)
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			i++
		case s[i] > o[j]:
			j++
		default:
			res = append(res, s[i])
			i++
			j++
		}
	}
	return res
}

// Diff returns a new set with all cells that are in s but not in o.
func (s Set) Diff(o Set) Set {
	res := make(Set, 0, len(s))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			res = append(res, s[i])
			i++
		case s[i] > o[j]:
			j++
		default:
			i++
			j++
		}
	}
	res = append(res, s[i:]...)
	return res
}

// Equal reports whether s and o contain exactly the same cells.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for i, c := range s {
		if c != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	res := make(Set, len(s))
	copy(res, s)
	return res
}

// Resolution returns the resolution shared by all cells in the set.
// It returns false when the set is empty or mixes resolutions.
func (s Set) Resolution() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	res := s[0].Resolution()
	for _, c := range s[1:] {
		if c.Resolution() != res {
			return 0, false
		}
	}
	return res, true
}

// String returns a human-readable representation of the set.
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (s Set) search(c h3.Cell) int {
	return sort.Search(len(s), func(i int) bool { return s[i] >= c })
}
