package highlight

import "github.com/odvcencio/scribe/textpos"

// Priority returns the render precedence of a token type; higher wins where
// ranges overlap. Comments outrank strings, which outrank keywords, types,
// functions, numbers and operators, in that order. Plain text is lowest.
func Priority(t TokenType) int {
	switch t {
	case Comment:
		return 100
	case String:
		return 90
	case Keyword:
		return 80
	case Type:
		return 70
	case Function:
		return 60
	case Number:
		return 50
	case Operator:
		return 40
	case Plain:
		return 0
	default:
		return 10
	}
}

// Flatten resolves overlapping ranges into non-overlapping spans, each code
// unit taking the type of the highest-priority range covering it. Adjacent
// units of the same type are merged. The input is not modified.
func Flatten(ranges []HighlightRange) []HighlightRange {
	end := 0
	for _, r := range ranges {
		end = max(end, r.End())
	}
	if end == 0 {
		return nil
	}

	owner := make([]TokenType, end)
	prio := make([]int, end)
	for i := range prio {
		prio[i] = -1
	}
	for _, r := range ranges {
		p := Priority(r.Type)
		for i := max(r.Offset, 0); i < r.End(); i++ {
			if p > prio[i] {
				prio[i] = p
				owner[i] = r.Type
			}
		}
	}

	var out []HighlightRange
	for i := 0; i < end; {
		if prio[i] < 0 || owner[i] == Plain {
			i++
			continue
		}
		j := i + 1
		for j < end && prio[j] >= 0 && owner[j] == owner[i] {
			j++
		}
		out = append(out, HighlightRange{Range: textpos.NewRange(i, j), Type: owner[i]})
		i = j
	}
	return out
}
