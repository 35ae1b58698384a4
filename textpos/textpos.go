// Package textpos converts between the UTF-16 code unit offsets used on the
// editing API surface and the byte and rune offsets Go strings index by.
package textpos

import "unicode/utf8"

// Range is a span of text measured in UTF-16 code units.
type Range struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// NewRange returns the range covering [start, end).
func NewRange(start, end int) Range {
	return Range{Offset: start, Length: end - start}
}

// End returns the exclusive end offset of the range.
func (r Range) End() int {
	return r.Offset + r.Length
}

// Empty reports whether the range has zero length.
func (r Range) Empty() bool {
	return r.Length == 0
}

// Valid reports whether the range lies within a text of n code units.
func (r Range) Valid(n int) bool {
	return r.Offset >= 0 && r.Length >= 0 && r.End() <= n
}

// Touches reports whether the two ranges overlap or share an edge.
func (r Range) Touches(o Range) bool {
	return r.Offset <= o.End() && o.Offset <= r.End()
}

// Union returns the smallest range covering both r and o.
func (r Range) Union(o Range) Range {
	start := min(r.Offset, o.Offset)
	end := max(r.End(), o.End())
	return NewRange(start, end)
}

// RuneLen returns the number of UTF-16 code units needed to encode r.
func RuneLen(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += RuneLen(r)
	}
	return n
}

// ByteOffset converts a UTF-16 offset into a byte offset into s. It reports
// false if the offset is negative, past the end, or points into the middle
// of a surrogate pair.
func ByteOffset(s string, unit int) (int, bool) {
	if unit < 0 {
		return 0, false
	}
	u := 0
	for i, r := range s {
		if u == unit {
			return i, true
		}
		if u > unit {
			return 0, false
		}
		u += RuneLen(r)
	}
	if u == unit {
		return len(s), true
	}
	return 0, false
}

// UnitOffset converts a byte offset into s to a UTF-16 offset. Offsets past
// the end are clamped.
func UnitOffset(s string, byteOff int) int {
	if byteOff > len(s) {
		byteOff = len(s)
	}
	return Len(s[:max(byteOff, 0)])
}

// Resolve maps r onto byte bounds within s.
func Resolve(s string, r Range) (start, end int, ok bool) {
	if r.Offset < 0 || r.Length < 0 {
		return 0, 0, false
	}
	start, ok = ByteOffset(s, r.Offset)
	if !ok {
		return 0, 0, false
	}
	end, ok = ByteOffset(s[start:], r.Length)
	if !ok {
		return 0, 0, false
	}
	return start, start + end, true
}

// Slice returns the substring of s covered by r.
func Slice(s string, r Range) (string, bool) {
	start, end, ok := Resolve(s, r)
	if !ok {
		return "", false
	}
	return s[start:end], true
}

// UnitTable returns the UTF-16 offset of every rune index in runes, with a
// final entry for the end of the text. It lets rune-indexed match results be
// reported in code units without rescanning the text.
func UnitTable(runes []rune) []int {
	table := make([]int, len(runes)+1)
	u := 0
	for i, r := range runes {
		table[i] = u
		u += RuneLen(r)
	}
	table[len(runes)] = u
	return table
}

