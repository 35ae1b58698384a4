package highlight

import (
	"fmt"

	"github.com/odvcencio/scribe/textpos"
)

// TokenType classifies a highlighted span.
type TokenType int

const (
	Plain TokenType = iota
	Keyword
	Type
	String
	Number
	Comment
	Function
	Variable
	Constant
	Operator
	Punctuation
	Attribute
	Preprocessor
	Regex
	URL

	numTokenTypes
)

var tokenNames = [numTokenTypes]string{
	Plain:        "plain",
	Keyword:      "keyword",
	Type:         "type",
	String:       "string",
	Number:       "number",
	Comment:      "comment",
	Function:     "function",
	Variable:     "variable",
	Constant:     "constant",
	Operator:     "operator",
	Punctuation:  "punctuation",
	Attribute:    "attribute",
	Preprocessor: "preprocessor",
	Regex:        "regex",
	URL:          "url",
}

func (t TokenType) String() string {
	if t < 0 || t >= numTokenTypes {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t TokenType) MarshalText() ([]byte, error) {
	if t < 0 || t >= numTokenTypes {
		return nil, fmt.Errorf("unknown token type %d", int(t))
	}
	return []byte(tokenNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TokenType) UnmarshalText(text []byte) error {
	for i, name := range tokenNames {
		if name == string(text) {
			*t = TokenType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token type %q", text)
}

// HighlightRange is a classified span of text. Offsets are UTF-16 code units.
// Ranges produced by the engine may overlap one another.
type HighlightRange struct {
	textpos.Range
	Type TokenType `json:"type"`
}
