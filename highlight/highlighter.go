// Package highlight turns source text into classified highlight ranges using
// the lexical rules in the language registry.
//
// Each language is highlighted by a fixed sequence of independent passes:
// keywords, types, strings, numbers, comments, functions and operators. Every
// pass scans the whole text and the results are concatenated and stably sorted
// by start offset. Overlaps are left for the consumer to arbitrate; see
// Priority and Flatten.
package highlight

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/hashicorp/go-multierror"

	"github.com/odvcencio/scribe/language"
	"github.com/odvcencio/scribe/logging"
	"github.com/odvcencio/scribe/textpos"
)

var log = logging.Log

// DefaultMatchTimeout bounds the time any single pass may spend matching.
const DefaultMatchTimeout = 250 * time.Millisecond

const numberPattern = `\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|\d[\d_]*(?:\.\d[\d_]*)?(?:[eE][+-]?\d+)?)\b`

// pass is one compiled regex and the token type its matches produce. When
// group is non-zero only that capture group is highlighted.
type pass struct {
	name  string
	re    *regexp2.Regexp
	kind  TokenType
	group int
}

// compiled is the ready-to-run form of a language definition.
type compiled struct {
	def      *language.Definition
	passes   []pass
	asciiOps [128]bool
	otherOps map[rune]bool
	hasOps   bool
}

// Highlighter holds compiled passes for every registered language. It is
// immutable after construction and safe for concurrent use.
type Highlighter struct {
	langs   map[language.ID]*compiled
	timeout time.Duration
	defs    []*language.Definition
	err     error
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithMatchTimeout sets the per-pass match timeout.
func WithMatchTimeout(d time.Duration) Option {
	return func(h *Highlighter) {
		h.timeout = d
	}
}

// WithDefinitions replaces the language registry the highlighter compiles.
func WithDefinitions(defs ...*language.Definition) Option {
	return func(h *Highlighter) {
		h.defs = defs
	}
}

// New compiles every language in the registry. A pattern that fails to
// compile disables only its own pass; the failures are logged and available
// from Err.
func New(opts ...Option) *Highlighter {
	h := &Highlighter{
		langs:   make(map[language.ID]*compiled),
		timeout: DefaultMatchTimeout,
		defs:    language.All(),
	}
	for _, opt := range opts {
		opt(h)
	}
	var errs *multierror.Error
	for _, def := range h.defs {
		c, err := h.compile(def)
		if err != nil {
			log.Warning("Highlighting for %s is degraded: %s", def.Name, err)
			errs = multierror.Append(errs, err)
		}
		h.langs[def.ID] = c
	}
	h.err = errs.ErrorOrNil()
	return h
}

// Err returns the pattern compile failures found at construction, or nil.
func (h *Highlighter) Err() error {
	return h.err
}

// Supports reports whether the highlighter has a definition for id.
func (h *Highlighter) Supports(id language.ID) bool {
	_, ok := h.langs[id]
	return ok
}

func (h *Highlighter) compile(def *language.Definition) (*compiled, error) {
	c := &compiled{def: def}
	var errs *multierror.Error
	add := func(name, pattern string, opts regexp2.RegexOptions, kind TokenType, group int) {
		re, err := regexp2.Compile(pattern, opts)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s %s pattern: %w", def.Name, name, err))
			return
		}
		re.MatchTimeout = h.timeout
		c.passes = append(c.passes, pass{name: name, re: re, kind: kind, group: group})
	}

	for _, p := range wordsPatterns(def.Keywords) {
		add("keyword", p, regexp2.None, Keyword, 0)
	}
	for _, p := range wordsPatterns(def.Types) {
		add("type", p, regexp2.None, Type, 0)
	}
	for _, d := range def.StringDelimiters {
		if d.Open == "" || d.Close == "" {
			continue
		}
		add("string", regexp2.Escape(d.Open)+".*?"+regexp2.Escape(d.Close), regexp2.Singleline, String, 0)
	}
	add("number", numberPattern, regexp2.None, Number, 0)
	for _, d := range def.CommentDelimiters {
		switch {
		case d.Open == "":
			continue
		case d.IsLine():
			add("comment", regexp2.Escape(d.Open)+".*", regexp2.None, Comment, 0)
		default:
			add("comment", regexp2.Escape(d.Open)+".*?"+regexp2.Escape(d.Close), regexp2.Singleline, Comment, 0)
		}
	}
	if def.FunctionPattern != "" {
		add("function", def.FunctionPattern, regexp2.None, Function, 2)
	}

	for _, r := range def.OperatorCharacters {
		c.hasOps = true
		if r < 128 {
			c.asciiOps[r] = true
			continue
		}
		if c.otherOps == nil {
			c.otherOps = make(map[rune]bool)
		}
		c.otherOps[r] = true
	}
	return c, errs.ErrorOrNil()
}

// wordsPatterns builds one word-boundary alternation over the entries made
// only of word characters, longest first so that a word never loses to its
// own prefix. Entries with other characters (such as "font-face") can overlap
// a shorter entry, so each of them gets a pattern of its own.
func wordsPatterns(words []string) []string {
	var plain, patterns []string
	for _, w := range words {
		switch {
		case w == "":
		case isWord(w):
			plain = append(plain, regexp2.Escape(w))
		default:
			patterns = append(patterns, `\b`+regexp2.Escape(w)+`\b`)
		}
	}
	if len(plain) == 0 {
		return patterns
	}
	sort.SliceStable(plain, func(i, j int) bool { return len(plain[i]) > len(plain[j]) })
	return append([]string{`\b(?:` + strings.Join(plain, "|") + `)\b`}, patterns...)
}

func isWord(s string) bool {
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Highlight returns the highlight ranges for text in the given language,
// sorted by start offset. Unknown languages and plain text yield nil.
func (h *Highlighter) Highlight(text string, id language.ID) []HighlightRange {
	c, ok := h.langs[id]
	if !ok || text == "" {
		return nil
	}
	runes := []rune(text)
	units := textpos.UnitTable(runes)

	var out []HighlightRange
	for i := range c.passes {
		out = append(out, c.passes[i].find(runes, units)...)
	}
	out = append(out, c.operators(runes, units)...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// HighlightAsync runs Highlight on its own goroutine and hands the result to
// done. text must not be shared mutable state; Go strings already satisfy that.
func (h *Highlighter) HighlightAsync(text string, id language.ID, done func([]HighlightRange)) {
	go func() {
		done(h.Highlight(text, id))
	}()
}

// find runs the pass over the whole text. A match error (in practice a
// timeout) discards everything this pass found.
func (p *pass) find(runes []rune, units []int) []HighlightRange {
	var out []HighlightRange
	m, err := p.re.FindRunesMatch(runes)
	for m != nil && err == nil {
		start, length := m.Index, m.Length
		if p.group > 0 {
			if g := m.GroupByNumber(p.group); g != nil {
				start, length = g.Index, g.Length
			} else {
				length = 0
			}
		}
		if length > 0 {
			out = append(out, HighlightRange{
				Range: textpos.NewRange(units[start], units[start+length]),
				Type:  p.kind,
			})
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		log.Debug("Skipping %s pass: %s", p.name, err)
		return nil
	}
	return out
}

// operators emits a single-character range for every operator character.
func (c *compiled) operators(runes []rune, units []int) []HighlightRange {
	if !c.hasOps {
		return nil
	}
	var out []HighlightRange
	for i, r := range runes {
		var hit bool
		if r < 128 {
			hit = c.asciiOps[r]
		} else {
			hit = c.otherOps[r]
		}
		if hit {
			out = append(out, HighlightRange{
				Range: textpos.NewRange(units[i], units[i+1]),
				Type:  Operator,
			})
		}
	}
	return out
}

var defaultHighlighter = New()

// Highlight highlights text with the shared registry-backed highlighter.
func Highlight(text string, id language.ID) []HighlightRange {
	return defaultHighlighter.Highlight(text, id)
}

// Default returns the shared registry-backed highlighter.
func Default() *Highlighter {
	return defaultHighlighter
}
