// Package completion ranks code completions at a cursor position from static
// per-language dictionaries, snippets and the text just before the cursor.
package completion

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/odvcencio/scribe/language"
)

// Kind classifies a completion candidate.
type Kind int

const (
	KindKeyword Kind = iota
	KindType
	KindFunction
	KindMethod
	KindProperty
	KindVariable
	KindConstant
	KindSnippet
	KindModule

	numKinds
)

var kindNames = [numKinds]string{
	KindKeyword:  "keyword",
	KindType:     "type",
	KindFunction: "function",
	KindMethod:   "method",
	KindProperty: "property",
	KindVariable: "variable",
	KindConstant: "constant",
	KindSnippet:  "snippet",
	KindModule:   "module",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= numKinds {
		return nil, fmt.Errorf("unknown completion kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown completion kind %q", name)
}

// Completion is one ranked suggestion.
type Completion struct {
	DisplayText   string  `json:"displayText"`
	Kind          Kind    `json:"type"`
	Detail        string  `json:"detail,omitempty"`
	InsertText    string  `json:"insertText"`
	Documentation string  `json:"documentation,omitempty"`
	Score         float64 `json:"score"`
}

// Snippet is a templated block of code offered when its trigger prefix is
// typed. Placeholders are written ${1:label}, ${1} or $1.
type Snippet struct {
	Name        string
	Prefix      string
	Body        string
	Description string
	Language    language.ID
}

// Completion converts the snippet into a candidate with the given base score.
func (s Snippet) Completion(score float64) Completion {
	return Completion{
		DisplayText:   s.Prefix,
		Kind:          KindSnippet,
		Detail:        s.Name,
		InsertText:    StripPlaceholders(s.Body),
		Documentation: s.Description,
		Score:         score,
	}
}

var placeholderRE = regexp2.MustCompile(`\$\{\d+:([^}]*)\}|\$\{\d+\}|\$\d+`, regexp2.None)

// StripPlaceholders removes tab-stop markup from a snippet body, keeping the
// default text of labelled placeholders.
func StripPlaceholders(body string) string {
	out, err := placeholderRE.Replace(body, "$1", -1, -1)
	if err != nil {
		return body
	}
	return out
}
