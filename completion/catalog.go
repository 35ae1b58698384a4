package completion

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/scribe/language"
)

// Base scores for candidates that do not carry their own.
const (
	KeywordScore = 1.0
	TypeScore    = 0.9
	SnippetScore = 0.8
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog holds the static candidates and snippets of every language. It is
// built once and only read afterwards.
type Catalog struct {
	entries  map[language.ID][]Completion
	snippets map[language.ID][]Snippet
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries:  make(map[language.ID][]Completion),
		snippets: make(map[language.ID][]Snippet),
	}
}

// Add appends candidates for a language. Candidates keep insertion order.
func (c *Catalog) Add(id language.ID, items ...Completion) {
	c.entries[id] = append(c.entries[id], items...)
}

// AddSnippets appends snippets to the catalog of their own language.
func (c *Catalog) AddSnippets(snippets ...Snippet) {
	for _, s := range snippets {
		c.snippets[s.Language] = append(c.snippets[s.Language], s)
	}
}

// AddLanguage adds the keywords and types of a language definition.
func (c *Catalog) AddLanguage(def *language.Definition) {
	for _, kw := range def.Keywords {
		c.Add(def.ID, Completion{DisplayText: kw, Kind: KindKeyword, Detail: "keyword", InsertText: kw, Score: KeywordScore})
	}
	for _, ty := range def.Types {
		c.Add(def.ID, Completion{DisplayText: ty, Kind: KindType, Detail: "type", InsertText: ty, Score: TypeScore})
	}
}

// Entries returns the candidates for a language in catalog order.
func (c *Catalog) Entries(id language.ID) []Completion {
	return c.entries[id]
}

// Snippets returns the snippets for a language in catalog order.
func (c *Catalog) Snippets(id language.ID) []Snippet {
	return c.snippets[id]
}

type yamlEntry struct {
	Text   string  `yaml:"text"`
	Kind   string  `yaml:"kind"`
	Detail string  `yaml:"detail"`
	Insert string  `yaml:"insert"`
	Doc    string  `yaml:"doc"`
	Score  float64 `yaml:"score"`
}

type yamlSnippet struct {
	Name        string `yaml:"name"`
	Prefix      string `yaml:"prefix"`
	Body        string `yaml:"body"`
	Description string `yaml:"description"`
}

type yamlLanguage struct {
	Entries  []yamlEntry   `yaml:"entries"`
	Snippets []yamlSnippet `yaml:"snippets"`
}

// LoadYAML adds the candidates and snippets described by a YAML document
// keyed by language name.
func (c *Catalog) LoadYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing completion catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("completion catalog: expected a mapping of languages at line %d", root.Line)
	}
	// Walk the mapping by hand so that languages load in file order.
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		id, ok := language.Parse(name)
		if !ok {
			return fmt.Errorf("completion catalog: unknown language %q at line %d", name, root.Content[i].Line)
		}
		var lang yamlLanguage
		if err := root.Content[i+1].Decode(&lang); err != nil {
			return fmt.Errorf("completion catalog: %s: %w", name, err)
		}
		for _, e := range lang.Entries {
			kind, err := ParseKind(e.Kind)
			if err != nil {
				return fmt.Errorf("completion catalog: %s %q: %w", name, e.Text, err)
			}
			insert := e.Insert
			if insert == "" {
				insert = e.Text
			}
			c.Add(id, Completion{
				DisplayText:   e.Text,
				Kind:          kind,
				Detail:        e.Detail,
				InsertText:    insert,
				Documentation: e.Doc,
				Score:         e.Score,
			})
		}
		for _, s := range lang.Snippets {
			c.AddSnippets(Snippet{
				Name:        s.Name,
				Prefix:      s.Prefix,
				Body:        s.Body,
				Description: s.Description,
				Language:    id,
			})
		}
	}
	return nil
}

// DefaultCatalog builds the catalog from the language registry and the
// embedded dictionary. Keywords and types come first, then dictionary entries.
func DefaultCatalog() (*Catalog, error) {
	c := NewCatalog()
	for _, def := range language.All() {
		c.AddLanguage(def)
	}
	if err := c.LoadYAML(catalogYAML); err != nil {
		return nil, err
	}
	return c, nil
}
