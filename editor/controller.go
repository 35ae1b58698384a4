package editor

import (
	"sync"
	"time"

	"github.com/odvcencio/scribe/completion"
	"github.com/odvcencio/scribe/highlight"
	"github.com/odvcencio/scribe/language"
	"github.com/odvcencio/scribe/logging"
	"github.com/odvcencio/scribe/textpos"
)

var log = logging.Log

// HighlightFunc classifies text for a language.
type HighlightFunc func(text string, id language.ID) []highlight.HighlightRange

// CompleteFunc ranks completions at a UTF-16 cursor offset.
type CompleteFunc func(text string, cursor int, id language.ID) []completion.Completion

// HighlightUpdate is a committed highlight set and the document version and
// language it was computed for.
type HighlightUpdate struct {
	Version  uint64                     `json:"version"`
	Language language.ID                `json:"language"`
	Ranges   []highlight.HighlightRange `json:"ranges"`
}

// autoClose maps the characters TypeText closes automatically to their
// closing partner.
var autoClose = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
	`"`: `"`,
	"'": "'",
}

// Controller owns a document and is the only thing that mutates it. Edits are
// undoable and schedule a debounced recomputation of highlights and line
// numbers, which are delivered to listeners from a background goroutine.
//
// Edits are expected to come from a single caller at a time. The controller
// still locks its state because recomputation runs concurrently with edits.
type Controller struct {
	cfg         Config
	highlightFn HighlightFunc
	completeFn  CompleteFunc
	sched       *scheduler
	deliverMu   sync.Mutex // held while highlight listeners run

	mu           sync.Mutex
	buf          *Buffer
	selections   SelectionSet
	lang         language.ID
	version      uint64
	highlights   HighlightUpdate
	onHighlights []func(HighlightUpdate)
	onLines      []func([]int)
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig sets the editing preferences.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithHighlighter replaces the highlighter used for recomputation.
func WithHighlighter(fn HighlightFunc) Option {
	return func(c *Controller) {
		c.highlightFn = fn
	}
}

// WithCompleter replaces the completion engine.
func WithCompleter(fn CompleteFunc) Option {
	return func(c *Controller) {
		c.completeFn = fn
	}
}

// NewController returns a controller holding an empty plain-text document.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		cfg:         DefaultConfig(),
		highlightFn: highlight.Highlight,
		completeFn:  completion.Complete,
		buf:         NewBuffer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sched = newScheduler(c.cfg.Debounce, c.recompute)
	return c
}

// Config returns the controller's preferences.
func (c *Controller) Config() Config {
	return c.cfg
}

// OnHighlights registers a listener for committed highlight sets. Listeners
// run without the controller lock held but must not call Flush. Deliveries
// never overlap, and a set superseded before its delivery starts is skipped.
func (c *Controller) OnHighlights(fn func(HighlightUpdate)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHighlights = append(c.onHighlights, fn)
}

// OnLineNumbers registers a listener for recomputed line numbers.
func (c *Controller) OnLineNumbers(fn func([]int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLines = append(c.onLines, fn)
}

// Text returns the current document text.
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Text()
}

// Version returns the document version, bumped by every content change.
func (c *Controller) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Language returns the document language.
func (c *Controller) Language() language.ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// Cursor returns the primary cursor range.
func (c *Controller) Cursor() textpos.Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Cursor()
}

// Selections returns the secondary selections in offset order.
func (c *Controller) Selections() []textpos.Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selections.Ranges()
}

// Highlights returns the most recently committed highlight set.
func (c *Controller) Highlights() HighlightUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlights
}

// LineNumbers returns 1..N for the current text.
func (c *Controller) LineNumbers() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return LineNumbers(c.buf.Text())
}

// CanUndo reports whether Undo would do anything.
func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.CanRedo()
}

// SetText replaces the document. History and selections are discarded.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.SetText(text)
	c.selections.Clear()
	c.changed()
}

// SetLanguage switches the document language. The switch is a new version;
// highlighting for it starts at once on a background goroutine, without
// waiting for the debounce timer.
func (c *Controller) SetLanguage(id language.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == c.lang {
		return
	}
	c.lang = id
	c.version++
	c.sched.now(updateHighlight)
}

// InsertText inserts text at the cursor offset and moves the cursor past it.
func (c *Controller) InsertText(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(textpos.Range{Offset: c.buf.Cursor().Offset}, text)
}

// DeleteText removes the text under r. A range that does not resolve against
// the current text is ignored.
func (c *Controller) DeleteText(r textpos.Range) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(r, "")
}

// ReplaceText swaps the text under r for text. A range that does not resolve
// against the current text is ignored.
func (c *Controller) ReplaceText(r textpos.Range, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(r, text)
}

// Undo restores the text and cursor from before the last edit.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.buf.Undo() {
		return false
	}
	c.selections.Retain(c.buf.Text())
	c.changed()
	return true
}

// Redo reapplies the last undone edit.
func (c *Controller) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.buf.Redo() {
		return false
	}
	c.selections.Retain(c.buf.Text())
	c.changed()
	return true
}

// SetCursor moves the primary cursor. Invalid ranges are ignored.
func (c *Controller) SetCursor(r textpos.Range) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.SetCursor(r)
}

// AddSelection adds a secondary selection, merging it with any selection it
// overlaps or touches. Invalid ranges are ignored.
func (c *Controller) AddSelection(r textpos.Range) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, _, ok := textpos.Resolve(c.buf.Text(), r); !ok {
		return false
	}
	c.selections.Add(r)
	return true
}

// ClearSelections removes every secondary selection.
func (c *Controller) ClearSelections() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selections.Clear()
}

// SelectedText returns the text under the cursor, or false if the cursor
// has no selection.
func (c *Controller) SelectedText() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.buf.Cursor()
	if r.Empty() {
		return "", false
	}
	return textpos.Slice(c.buf.Text(), r)
}

// FindMatchingBracket returns the position of the bracket matching the one
// at pos.
func (c *Controller) FindMatchingBracket(pos int) (int, bool) {
	c.mu.Lock()
	text := c.buf.Text()
	c.mu.Unlock()
	return FindMatchingBracket(text, pos)
}

// GetCompletions ranks completions at the cursor.
func (c *Controller) GetCompletions() []completion.Completion {
	c.mu.Lock()
	text, cursor, lang := c.buf.Text(), c.buf.Cursor().Offset, c.lang
	c.mu.Unlock()
	return c.completeFn(text, cursor, lang)
}

// IndentUnit returns one level of indentation: the style the document already
// uses, or the configured one if it has no indented lines.
func (c *Controller) IndentUnit() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indentUnit()
}

func (c *Controller) indentUnit() string {
	if unit, ok := DetectIndentStyle(c.buf.Text()); ok {
		return unit
	}
	return c.cfg.IndentUnit()
}

// InsertNewline inserts a line break at the cursor, copying the current
// line's indentation when auto-indent is on.
func (c *Controller) InsertNewline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := "\n"
	if c.cfg.AutoIndent {
		at, _ := textpos.ByteOffset(c.buf.Text(), c.buf.Cursor().Offset)
		text += ComputeIndent(lineBefore(c.buf.Text(), at), c.indentUnit())
	}
	return c.replace(textpos.Range{Offset: c.buf.Cursor().Offset}, text)
}

// InsertTab inserts one level of indentation at the cursor.
func (c *Controller) InsertTab() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(textpos.Range{Offset: c.buf.Cursor().Offset}, c.indentUnit())
}

// TypeText inserts text as if typed. With auto-close on, an opening bracket
// or quote also inserts its partner and leaves the cursor between them, and
// typing a closing character in front of the same character steps over it.
func (c *Controller) TypeText(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	offset := c.buf.Cursor().Offset
	if !c.cfg.AutoCloseBrackets {
		return c.replace(textpos.Range{Offset: offset}, text)
	}

	if next, ok := textpos.Slice(c.buf.Text(), textpos.Range{Offset: offset, Length: 1}); ok && next == text && isCloser(text) {
		c.buf.cursor = textpos.Range{Offset: offset + 1}
		return true
	}
	closer, ok := autoClose[text]
	if !ok {
		return c.replace(textpos.Range{Offset: offset}, text)
	}
	if !c.replace(textpos.Range{Offset: offset}, text+closer) {
		return false
	}
	c.buf.cursor = textpos.Range{Offset: offset + 1}
	return true
}

func isCloser(s string) bool {
	switch s {
	case ")", "]", "}", `"`, "'":
		return true
	}
	return false
}

// Flush runs any pending recomputation now and returns once it is done.
func (c *Controller) Flush() {
	c.sched.flush()
}

// Close stops the debounce timer. Pending recomputation is dropped.
func (c *Controller) Close() {
	c.sched.stop()
}

// replace applies an edit. c.mu must be held.
func (c *Controller) replace(r textpos.Range, text string) bool {
	if !c.buf.Replace(r, text) {
		return false
	}
	c.selections.Shift(r, textpos.Len(text))
	c.selections.Retain(c.buf.Text())
	c.changed()
	return true
}

// changed records a content change. c.mu must be held.
func (c *Controller) changed() {
	c.version++
	c.sched.schedule(updateHighlight | updateLineNumbers)
}

// recompute is the scheduler's run function.
func (c *Controller) recompute(kinds updateKind) {
	if kinds&updateHighlight != 0 {
		c.highlightNow()
	}
	if kinds&updateLineNumbers != 0 {
		c.mu.Lock()
		lines := LineNumbers(c.buf.Text())
		listeners := c.onLines
		c.mu.Unlock()
		for _, fn := range listeners {
			fn(lines)
		}
	}
}

// highlightNow highlights a snapshot of the document and commits the result
// if the document has not changed in the meantime.
func (c *Controller) highlightNow() {
	c.mu.Lock()
	text, lang, version := c.buf.Text(), c.lang, c.version
	c.mu.Unlock()

	start := time.Now()
	ranges := c.highlightFn(text, lang)
	observeHighlight(lang.String(), start)

	c.mu.Lock()
	if c.version != version || c.lang != lang {
		c.mu.Unlock()
		highlightStale.Inc()
		log.Debug("Dropping highlights for version %d (%s); document is at version %d (%s)", version, lang, c.version, c.lang)
		return
	}
	update := HighlightUpdate{Version: version, Language: lang, Ranges: ranges}
	c.highlights = update
	c.mu.Unlock()

	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()
	c.mu.Lock()
	current := c.highlights.Version == update.Version && c.highlights.Language == update.Language
	listeners := c.onHighlights
	c.mu.Unlock()
	if !current {
		return
	}
	for _, fn := range listeners {
		fn(update)
	}
}
