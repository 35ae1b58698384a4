// Package language holds the static lexical profile of every supported
// language. The table is built once at init and never mutated, so it can be
// shared across goroutines without locking.
package language

import "strings"

// ID identifies a language. The set is closed.
type ID int

const (
	Plain ID = iota
	Swift
	Python
	JavaScript
	TypeScript
	Java
	Kotlin
	Go
	Rust
	C
	CPP
	CSharp
	Ruby
	PHP
	HTML
	CSS
	JSON
	YAML
	Markdown
	Shell

	numIDs
)

var idNames = [numIDs]string{
	Plain:      "plain",
	Swift:      "swift",
	Python:     "python",
	JavaScript: "javascript",
	TypeScript: "typescript",
	Java:       "java",
	Kotlin:     "kotlin",
	Go:         "go",
	Rust:       "rust",
	C:          "c",
	CPP:        "cpp",
	CSharp:     "csharp",
	Ruby:       "ruby",
	PHP:        "php",
	HTML:       "html",
	CSS:        "css",
	JSON:       "json",
	YAML:       "yaml",
	Markdown:   "markdown",
	Shell:      "shell",
}

var aliases = map[string]ID{
	"text":   Plain,
	"txt":    Plain,
	"js":     JavaScript,
	"ts":     TypeScript,
	"golang": Go,
	"rs":     Rust,
	"c++":    CPP,
	"cxx":    CPP,
	"c#":     CSharp,
	"cs":     CSharp,
	"rb":     Ruby,
	"yml":    YAML,
	"md":     Markdown,
	"sh":     Shell,
	"bash":   Shell,
	"zsh":    Shell,
	"py":     Python,
	"kt":     Kotlin,
}

// String returns the canonical lowercase name of the language.
func (id ID) String() string {
	if id < 0 || id >= numIDs {
		return "plain"
	}
	return idNames[id]
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to Plain.
func (id *ID) UnmarshalText(text []byte) error {
	*id, _ = Parse(string(text))
	return nil
}

// Parse returns the language with the given name or alias, case-insensitively.
// It returns Plain and false if the name is not recognised.
func Parse(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range idNames {
		if n == name {
			return ID(i), true
		}
	}
	if id, ok := aliases[name]; ok {
		return id, true
	}
	return Plain, false
}

// Delimiter is an opening and closing marker pair for strings or comments.
// A pair whose Close is a newline is a line form that runs to end of line.
type Delimiter struct {
	Open, Close string
}

// IsLine reports whether the delimiter runs to the end of the line.
func (d Delimiter) IsLine() bool {
	return d.Close == "\n"
}

// Definition is the immutable lexical profile of one language.
type Definition struct {
	ID         ID
	Name       string
	Extensions []string // e.g. [".go"]
	Shebangs   []string // e.g. ["#!/bin/sh"]

	Keywords          []string
	Types             []string
	StringDelimiters  []Delimiter
	CommentDelimiters []Delimiter
	// FunctionPattern's second capture group is the declared function name.
	// Empty disables function highlighting.
	FunctionPattern    string
	OperatorCharacters string

	// Words that, when seen just before the cursor, hint that a function or a
	// variable declaration is being written.
	FunctionKeywords []string
	VariableKeywords []string
}

// IsOperator reports whether r is one of the language's operator characters.
func (d *Definition) IsOperator(r rune) bool {
	return strings.ContainsRune(d.OperatorCharacters, r)
}

var definitions [numIDs]*Definition

func register(def Definition) {
	d := def
	definitions[d.ID] = &d
}

// Lookup returns the definition for id. Plain text and unknown IDs have no
// definition.
func Lookup(id ID) (*Definition, bool) {
	if id <= Plain || id >= numIDs {
		return nil, false
	}
	d := definitions[id]
	return d, d != nil
}

// All returns every registered definition in ID order.
func All() []*Definition {
	out := make([]*Definition, 0, numIDs)
	for _, d := range definitions {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// IDs returns every language ID, including Plain.
func IDs() []ID {
	out := make([]ID, numIDs)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}
