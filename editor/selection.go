package editor

import (
	"sort"

	"github.com/odvcencio/scribe/textpos"
)

// SelectionSet is the set of secondary selections used for multi-cursor
// editing. Ranges are kept sorted by offset, and ranges that overlap or share
// an edge are merged into one.
type SelectionSet struct {
	ranges []textpos.Range
}

// Add inserts r into the set, merging it with any range it touches.
func (s *SelectionSet) Add(r textpos.Range) {
	s.ranges = append(s.ranges, r)
	s.normalize()
}

// Clear removes every selection.
func (s *SelectionSet) Clear() {
	s.ranges = nil
}

// Len reports how many selections are in the set.
func (s *SelectionSet) Len() int {
	return len(s.ranges)
}

// Ranges returns a copy of the selections in offset order.
func (s *SelectionSet) Ranges() []textpos.Range {
	if len(s.ranges) == 0 {
		return nil
	}
	out := make([]textpos.Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Shift moves the selections to account for the text under edit being
// replaced by insertLen code units. Offsets inside the edited span move to
// its new end.
func (s *SelectionSet) Shift(edit textpos.Range, insertLen int) {
	if len(s.ranges) == 0 {
		return
	}
	for i, r := range s.ranges {
		start := updateOffset(r.Offset, edit, insertLen)
		end := updateOffset(r.End(), edit, insertLen)
		s.ranges[i] = textpos.NewRange(start, end)
	}
	s.normalize()
}

// Retain drops every selection that no longer resolves against text.
func (s *SelectionSet) Retain(text string) {
	kept := s.ranges[:0]
	for _, r := range s.ranges {
		if _, _, ok := textpos.Resolve(text, r); ok {
			kept = append(kept, r)
		}
	}
	s.ranges = kept
	if len(s.ranges) == 0 {
		s.ranges = nil
	}
}

func (s *SelectionSet) normalize() {
	sort.Slice(s.ranges, func(i, j int) bool {
		if s.ranges[i].Offset == s.ranges[j].Offset {
			return s.ranges[i].Length < s.ranges[j].Length
		}
		return s.ranges[i].Offset < s.ranges[j].Offset
	})
	merged := s.ranges[:0]
	for _, r := range s.ranges {
		if n := len(merged); n > 0 && merged[n-1].Touches(r) {
			merged[n-1] = merged[n-1].Union(r)
			continue
		}
		merged = append(merged, r)
	}
	s.ranges = merged
}

func updateOffset(cur int, edit textpos.Range, insertLen int) int {
	switch {
	case cur < edit.Offset:
		return cur
	case cur <= edit.End():
		return edit.Offset + insertLen
	default:
		return cur + insertLen - edit.Length
	}
}
