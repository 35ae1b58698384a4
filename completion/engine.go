package completion

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/odvcencio/scribe/language"
	"github.com/odvcencio/scribe/textpos"
)

// MaxResults caps the number of completions returned by Complete.
const MaxResults = 20

// ContextWindow is the number of UTF-16 code units before the cursor
// considered when boosting candidates.
const ContextWindow = 100

// Ranking bonuses.
const (
	exactBonus    = 0.5
	prefixBonus   = 0.3
	funcBonus     = 0.2
	classBonus    = 0.2
	variableBonus = 0.3
)

// Engine ranks completions from a catalog. It holds no per-call state and is
// safe for concurrent use once its catalog is built.
type Engine struct {
	catalog *Catalog
}

// NewEngine returns an engine reading from c.
func NewEngine(c *Catalog) *Engine {
	return &Engine{catalog: c}
}

// Complete returns at most MaxResults candidates for the identifier being
// typed at cursor, highest score first. Ties keep catalog order. An invalid
// cursor yields nil.
func (e *Engine) Complete(text string, cursor int, id language.ID) []Completion {
	at, ok := textpos.ByteOffset(text, cursor)
	if !ok {
		return nil
	}
	word := currentWord(text, at)
	ctx := contextBefore(text, at)
	lower := strings.ToLower(word)

	candidates := make([]Completion, 0, len(e.catalog.Entries(id)))
	candidates = append(candidates, e.catalog.Entries(id)...)
	for _, s := range e.catalog.Snippets(id) {
		if strings.HasPrefix(s.Prefix, lower) {
			candidates = append(candidates, s.Completion(SnippetScore))
		}
	}

	boostFunc, boostClass, boostVar := contextHints(ctx, id)
	out := candidates[:0]
	for _, c := range candidates {
		if word != "" {
			if !strings.HasPrefix(strings.ToLower(c.DisplayText), lower) {
				continue
			}
			if c.DisplayText == word {
				c.Score += exactBonus
			}
			if strings.HasPrefix(c.DisplayText, word) {
				c.Score += prefixBonus
			}
		}
		switch c.Kind {
		case KindFunction:
			if boostFunc {
				c.Score += funcBonus
			}
		case KindType:
			if boostClass {
				c.Score += classBonus
			}
			if boostVar {
				c.Score += variableBonus
			}
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

// contextHints reports which boosts the text before the cursor calls for.
func contextHints(ctx string, id language.ID) (function, class, variable bool) {
	funcWords := []string{"func"}
	varWords := []string{"var", "let"}
	if def, ok := language.Lookup(id); ok {
		funcWords = append(funcWords, def.FunctionKeywords...)
		varWords = append(varWords, def.VariableKeywords...)
	}
	return containsAny(ctx, funcWords), strings.Contains(ctx, "class"), containsAny(ctx, varWords)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// currentWord returns the identifier characters ending at byte offset at.
func currentWord(text string, at int) string {
	start := at
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !isWordRune(r) {
			break
		}
		start -= size
	}
	return text[start:at]
}

// contextBefore returns up to ContextWindow code units ending at byte offset at.
func contextBefore(text string, at int) string {
	start, units := at, 0
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		n := 1
		if r >= 0x10000 {
			n = 2
		}
		if units+n > ContextWindow {
			break
		}
		units += n
		start -= size
	}
	return text[start:at]
}

// CurrentWord returns the partial identifier immediately before the UTF-16
// offset cursor, or "" when the cursor is not preceded by one.
func CurrentWord(text string, cursor int) string {
	at, ok := textpos.ByteOffset(text, cursor)
	if !ok {
		return ""
	}
	return currentWord(text, at)
}

// Context returns the text window before cursor used for ranking hints.
func Context(text string, cursor int) string {
	at, ok := textpos.ByteOffset(text, cursor)
	if !ok {
		return ""
	}
	return contextBefore(text, at)
}

var defaultEngine = NewEngine(mustDefaultCatalog())

func mustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the shared engine backed by DefaultCatalog.
func Default() *Engine {
	return defaultEngine
}

// Complete ranks completions with the shared engine.
func Complete(text string, cursor int, id language.ID) []Completion {
	return defaultEngine.Complete(text, cursor, id)
}
