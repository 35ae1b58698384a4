package editor

import (
	"unicode/utf8"

	"github.com/odvcencio/scribe/textpos"
)

// bracketPairs maps each bracket character to its matching partner.
var bracketPairs = map[byte]byte{
	'(': ')',
	')': '(',
	'{': '}',
	'}': '{',
	'[': ']',
	']': '[',
}

// openBrackets is the set of opening bracket characters.
var openBrackets = map[byte]bool{
	'(': true,
	'{': true,
	'[': true,
}

// FindMatchingBracket finds the matching bracket for the bracket at the given
// UTF-16 position. Returns the position of the match and true, or 0 and
// false if no match is found or the position is not a bracket.
// Supports: () {} []
//
// The scan starts at pos and stops at the match.
func FindMatchingBracket(text string, pos int) (int, bool) {
	at, ok := textpos.ByteOffset(text, pos)
	if !ok || at >= len(text) {
		return 0, false
	}

	ch := text[at]
	partner, isBracket := bracketPairs[ch]
	if !isBracket {
		return 0, false
	}

	depth := 0
	visit := func(r rune) bool {
		switch r {
		case rune(ch):
			depth++
		case rune(partner):
			depth--
		}
		return depth == 0
	}

	if openBrackets[ch] {
		unit := pos
		for i := at; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			if visit(r) {
				return unit, true
			}
			i += size
			unit += textpos.RuneLen(r)
		}
		return 0, false
	}

	unit := pos + 1
	for i := at + 1; i > 0; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
		unit -= textpos.RuneLen(r)
		if visit(r) {
			return unit, true
		}
	}
	return 0, false
}

