package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/scribe/textpos"
)

func TestSelectionSetSortsAndMerges(t *testing.T) {
	tests := []struct {
		name string
		add  []textpos.Range
		want []textpos.Range
	}{
		{"empty", nil, nil},
		{"sorted", []textpos.Range{rng(8, 1), rng(0, 2), rng(4, 1)}, []textpos.Range{rng(0, 2), rng(4, 1), rng(8, 1)}},
		{"overlap", []textpos.Range{rng(0, 4), rng(2, 4)}, []textpos.Range{rng(0, 6)}},
		{"touching", []textpos.Range{rng(0, 2), rng(2, 2)}, []textpos.Range{rng(0, 4)}},
		{"contained", []textpos.Range{rng(0, 10), rng(3, 2)}, []textpos.Range{rng(0, 10)}},
		{"same cursor twice", []textpos.Range{rng(3, 0), rng(3, 0)}, []textpos.Range{rng(3, 0)}},
		{"bridged", []textpos.Range{rng(0, 1), rng(5, 1), rng(1, 4)}, []textpos.Range{rng(0, 6)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SelectionSet
			for _, r := range tt.add {
				s.Add(r)
			}
			assert.Equal(t, tt.want, s.Ranges())
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestSelectionSetShift(t *testing.T) {
	var s SelectionSet
	s.Add(rng(0, 1))
	s.Add(rng(4, 2))
	s.Add(rng(10, 0))

	// "xx" inserted at 2.
	s.Shift(rng(2, 0), 2)
	assert.Equal(t, []textpos.Range{rng(0, 1), rng(6, 2), rng(12, 0)}, s.Ranges())

	// Characters 5..9 deleted: the middle selection collapses to the edit point.
	s.Shift(rng(5, 4), 0)
	assert.Equal(t, []textpos.Range{rng(0, 1), rng(5, 0), rng(8, 0)}, s.Ranges())
}

func TestSelectionSetRetain(t *testing.T) {
	var s SelectionSet
	s.Add(rng(0, 1))
	s.Add(rng(3, 3))
	s.Retain("abcd")
	assert.Equal(t, []textpos.Range{rng(0, 1)}, s.Ranges())
	s.Retain("")
	assert.Nil(t, s.Ranges())
}

func TestSelectionRangesIsACopy(t *testing.T) {
	var s SelectionSet
	s.Add(rng(1, 1))
	got := s.Ranges()
	got[0] = rng(9, 9)
	assert.Equal(t, []textpos.Range{rng(1, 1)}, s.Ranges())
}
