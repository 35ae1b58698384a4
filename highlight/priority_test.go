package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/scribe/language"
)

func TestPriorityOrder(t *testing.T) {
	order := []TokenType{Comment, String, Keyword, Type, Function, Number, Operator, Variable, Plain}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, Priority(order[i-1]), Priority(order[i]), "%s should outrank %s", order[i-1], order[i])
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(Highlight("// comment\nlet x = 1", language.Swift))
	want := []HighlightRange{
		hr(0, 10, Comment),
		hr(11, 3, Keyword),
		hr(17, 1, Operator),
		hr(19, 1, Number),
	}
	assert.Equal(t, want, got)
}

func TestFlattenStringWinsOverKeyword(t *testing.T) {
	got := Flatten([]HighlightRange{hr(1, 2, Keyword), hr(0, 4, String)})
	assert.Equal(t, []HighlightRange{hr(0, 4, String)}, got)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Nil(t, Flatten(nil))
}
