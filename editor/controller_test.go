package editor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/scribe/completion"
	"github.com/odvcencio/scribe/highlight"
	"github.com/odvcencio/scribe/language"
	"github.com/odvcencio/scribe/textpos"
)

// manualConfig is DefaultConfig with a debounce that never fires on its own,
// so tests drive recomputation with Flush.
func manualConfig() Config {
	cfg := DefaultConfig()
	cfg.Debounce = time.Hour
	return cfg
}

func manual(opts ...Option) *Controller {
	return NewController(append([]Option{WithConfig(manualConfig())}, opts...)...)
}

type updates struct {
	mu         sync.Mutex
	highlights []HighlightUpdate
	lines      [][]int
}

func listen(c *Controller) *updates {
	u := &updates{}
	c.OnHighlights(func(h HighlightUpdate) {
		u.mu.Lock()
		defer u.mu.Unlock()
		u.highlights = append(u.highlights, h)
	})
	c.OnLineNumbers(func(lines []int) {
		u.mu.Lock()
		defer u.mu.Unlock()
		u.lines = append(u.lines, lines)
	})
	return u
}

func (u *updates) gotHighlights() []HighlightUpdate {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]HighlightUpdate(nil), u.highlights...)
}

func (u *updates) gotLines() [][]int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([][]int(nil), u.lines...)
}

func staleCount(t *testing.T) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "scribe_highlight_stale_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestInsertAtEndAndUndo(t *testing.T) {
	c := manual()
	c.SetText("abc")
	require.True(t, c.SetCursor(rng(3, 0)))
	before := c.Cursor()

	require.True(t, c.InsertText("d"))
	assert.Equal(t, "abcd", c.Text())
	assert.Equal(t, rng(4, 0), c.Cursor())

	require.True(t, c.Undo())
	assert.Equal(t, "abc", c.Text())
	assert.Equal(t, before, c.Cursor())

	require.True(t, c.Redo())
	assert.Equal(t, "abcd", c.Text())
	assert.False(t, c.CanRedo())
	assert.True(t, c.CanUndo())
}

func TestInvalidRangesLeaveControllerUsable(t *testing.T) {
	c := manual()
	c.SetText("hello")
	version := c.Version()

	assert.False(t, c.DeleteText(rng(3, 10)))
	assert.False(t, c.ReplaceText(rng(-1, 1), "x"))
	assert.False(t, c.SetCursor(rng(6, 0)))
	assert.False(t, c.AddSelection(rng(2, 9)))
	assert.Equal(t, "hello", c.Text())
	assert.Equal(t, version, c.Version())

	require.True(t, c.ReplaceText(rng(0, 5), "bye"))
	assert.Equal(t, "bye", c.Text())
	assert.Equal(t, rng(3, 0), c.Cursor())
}

func TestSelectedText(t *testing.T) {
	c := manual()
	c.SetText("hello")
	_, ok := c.SelectedText()
	assert.False(t, ok)

	require.True(t, c.SetCursor(rng(1, 3)))
	got, ok := c.SelectedText()
	assert.True(t, ok)
	assert.Equal(t, "ell", got)
}

func TestSelectionsFollowEdits(t *testing.T) {
	c := manual()
	c.SetText("one two three")
	require.True(t, c.AddSelection(rng(8, 5)))
	require.True(t, c.AddSelection(rng(0, 3)))
	assert.Equal(t, []textpos.Range{rng(0, 3), rng(8, 5)}, c.Selections())

	require.True(t, c.ReplaceText(rng(4, 3), "2"))
	assert.Equal(t, "one 2 three", c.Text())
	assert.Equal(t, []textpos.Range{rng(0, 3), rng(6, 5)}, c.Selections())

	c.SetText("x")
	assert.Nil(t, c.Selections(), "replacing the document drops selections")

	require.True(t, c.AddSelection(rng(0, 1)))
	c.ClearSelections()
	assert.Nil(t, c.Selections())
}

func TestUndoDropsSelectionsOutsideText(t *testing.T) {
	c := manual()
	c.SetText("ab")
	require.True(t, c.SetCursor(rng(2, 0)))
	require.True(t, c.InsertText("cdef"))
	require.True(t, c.AddSelection(rng(4, 2)))
	require.True(t, c.Undo())
	assert.Nil(t, c.Selections())
}

func TestFindMatchingBracketOnDocument(t *testing.T) {
	c := manual()
	c.SetText("(a(b)c)")
	got, ok := c.FindMatchingBracket(0)
	assert.True(t, ok)
	assert.Equal(t, 6, got)
	got, ok = c.FindMatchingBracket(2)
	assert.True(t, ok)
	assert.Equal(t, 4, got)
	_, ok = c.FindMatchingBracket(1)
	assert.False(t, ok)
}

func TestGetCompletionsUsesDocumentState(t *testing.T) {
	var gotText string
	var gotCursor int
	var gotLang language.ID
	c := manual(WithCompleter(func(text string, cursor int, id language.ID) []completion.Completion {
		gotText, gotCursor, gotLang = text, cursor, id
		return []completion.Completion{{DisplayText: "private"}}
	}))
	c.SetText("pri")
	c.SetLanguage(language.Swift)
	require.True(t, c.SetCursor(rng(3, 0)))

	got := c.GetCompletions()
	assert.Equal(t, []completion.Completion{{DisplayText: "private"}}, got)
	assert.Equal(t, "pri", gotText)
	assert.Equal(t, 3, gotCursor)
	assert.Equal(t, language.Swift, gotLang)
}

func TestDefaultCompleter(t *testing.T) {
	c := manual()
	c.SetLanguage(language.Swift)
	c.SetText("pri")
	require.True(t, c.SetCursor(rng(3, 0)))
	got := c.GetCompletions()
	require.NotEmpty(t, got)
	assert.Equal(t, "private", got[0].DisplayText)
}

func TestFlushDeliversHighlightsAndLines(t *testing.T) {
	c := manual()
	u := listen(c)
	c.SetLanguage(language.Swift)
	c.Flush()
	require.Len(t, u.gotHighlights(), 1)

	c.SetText("// comment\nlet x = 1")
	assert.Len(t, u.gotHighlights(), 1, "nothing recomputed before the debounce")
	assert.Empty(t, u.gotLines())

	c.Flush()
	hs := u.gotHighlights()
	require.Len(t, hs, 2)
	last := hs[1]
	assert.Equal(t, uint64(2), c.Version())
	assert.Equal(t, c.Version(), last.Version)
	assert.Equal(t, language.Swift, last.Language)
	assert.Equal(t, highlight.Highlight("// comment\nlet x = 1", language.Swift), last.Ranges)
	assert.Equal(t, last, c.Highlights())
	assert.Equal(t, [][]int{{1, 2}}, u.gotLines())
	assert.Equal(t, []int{1, 2}, c.LineNumbers())
}

func TestSetLanguageSkipsDebounce(t *testing.T) {
	c := manual()
	u := listen(c)
	c.SetText("func foo() {}")

	c.SetLanguage(language.Swift)
	assert.Equal(t, uint64(2), c.Version(), "a language switch is a new version")
	require.Eventually(t, func() bool { return len(u.gotHighlights()) == 1 }, 2*time.Second, 5*time.Millisecond)
	hs := u.gotHighlights()
	assert.Equal(t, language.Swift, hs[0].Language)
	assert.Equal(t, uint64(2), hs[0].Version)
	assert.Contains(t, hs[0].Ranges, highlight.HighlightRange{Range: rng(5, 3), Type: highlight.Function})
	assert.Equal(t, language.Swift, c.Language())

	c.SetLanguage(language.Swift)
	c.Flush()
	assert.Len(t, u.gotHighlights(), 1, "same language is a no-op")
	assert.Equal(t, uint64(2), c.Version())

	c.SetLanguage(language.Plain)
	c.Flush()
	hs = u.gotHighlights()
	require.Len(t, hs, 2)
	assert.Equal(t, uint64(3), hs[1].Version)
	assert.Empty(t, hs[1].Ranges)
}

func TestSetLanguageDoesNotWaitForHighlighter(t *testing.T) {
	release := make(chan struct{})
	c := manual(WithHighlighter(func(text string, id language.ID) []highlight.HighlightRange {
		<-release
		return nil
	}))
	u := listen(c)

	returned := make(chan struct{})
	go func() {
		c.SetLanguage(language.Go)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("SetLanguage waited for the highlighter")
	}

	close(release)
	c.Flush()
	hs := u.gotHighlights()
	require.Len(t, hs, 1)
	assert.Equal(t, language.Go, hs[0].Language)
}

func TestLanguageSwitchDuringDeliveryEndsOnNewLanguage(t *testing.T) {
	c := manual()
	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var delivered []HighlightUpdate
	c.OnHighlights(func(u HighlightUpdate) {
		mu.Lock()
		delivered = append(delivered, u)
		first := len(delivered) == 1
		mu.Unlock()
		if first {
			close(entered)
			<-release
		}
	})
	c.SetText("func main() {}")

	flushed := make(chan struct{})
	go func() {
		c.Flush()
		close(flushed)
	}()
	<-entered
	c.SetLanguage(language.Go)
	close(release)
	<-flushed
	c.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 2)
	assert.Equal(t, language.Plain, delivered[0].Language)
	assert.Equal(t, uint64(1), delivered[0].Version)
	last := delivered[1]
	assert.Equal(t, language.Go, last.Language)
	assert.Equal(t, uint64(2), last.Version)
	assert.Equal(t, last, c.Highlights())
	assert.Equal(t, c.Version(), last.Version)
}

func TestDebounceCoalescesEdits(t *testing.T) {
	var calls int32
	cfg := DefaultConfig()
	cfg.Debounce = 30 * time.Millisecond
	c := NewController(WithConfig(cfg), WithHighlighter(func(text string, id language.ID) []highlight.HighlightRange {
		atomic.AddInt32(&calls, 1)
		return nil
	}))
	defer c.Close()
	u := listen(c)

	for _, ch := range []string{"h", "e", "l", "l", "o"} {
		c.InsertText(ch)
	}
	assert.Eventually(t, func() bool { return len(u.gotHighlights()) == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(3 * cfg.Debounce)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	hs := u.gotHighlights()
	require.Len(t, hs, 1)
	assert.Equal(t, uint64(5), hs[0].Version)
	assert.Equal(t, "hello", c.Text())
}

func TestStaleHighlightIsDropped(t *testing.T) {
	started := make(chan string, 4)
	release := make(chan struct{})
	var calls int32
	hl := func(text string, id language.ID) []highlight.HighlightRange {
		started <- text
		if atomic.AddInt32(&calls, 1) == 1 {
			<-release
		}
		return []highlight.HighlightRange{{Range: rng(0, textpos.Len(text)), Type: highlight.Keyword}}
	}
	cfg := DefaultConfig()
	cfg.Debounce = time.Millisecond
	c := NewController(WithConfig(cfg), WithHighlighter(hl))
	defer c.Close()
	u := listen(c)
	stale := staleCount(t)

	c.SetText("first")
	select {
	case got := <-started:
		require.Equal(t, "first", got)
	case <-time.After(2 * time.Second):
		t.Fatal("highlighting never started")
	}
	require.True(t, c.InsertText("!"))
	close(release)
	c.Flush()

	hs := u.gotHighlights()
	require.Len(t, hs, 1, "the pass over the old text must not be committed")
	assert.Equal(t, uint64(2), hs[0].Version)
	assert.Equal(t, []highlight.HighlightRange{{Range: rng(0, 6), Type: highlight.Keyword}}, hs[0].Ranges)
	assert.Equal(t, hs[0], c.Highlights())
	assert.Equal(t, stale+1, staleCount(t))
}

func TestTypeTextAutoClose(t *testing.T) {
	c := manual()
	require.True(t, c.TypeText("f"))
	require.True(t, c.TypeText("("))
	assert.Equal(t, "f()", c.Text())
	assert.Equal(t, rng(2, 0), c.Cursor())

	require.True(t, c.TypeText(")"))
	assert.Equal(t, "f()", c.Text(), "typing the closer steps over it")
	assert.Equal(t, rng(3, 0), c.Cursor())

	require.True(t, c.Undo())
	assert.Equal(t, "f", c.Text(), "the auto-closed pair is one edit")
}

func TestTypeTextWithoutAutoClose(t *testing.T) {
	cfg := manualConfig()
	cfg.AutoCloseBrackets = false
	c := manual(WithConfig(cfg))
	require.True(t, c.TypeText("["))
	assert.Equal(t, "[", c.Text())
	assert.Equal(t, rng(1, 0), c.Cursor())
}

func TestInsertNewlineAutoIndent(t *testing.T) {
	tests := []struct {
		name   string
		config func(*Config)
		text   string
		want   string
	}{
		{"copies indent", nil, "\tx := 1", "\tx := 1\n\t"},
		{"indents after brace with configured spaces", nil, "func f() {", "func f() {\n    "},
		{"indents with the document's style", nil, "a {\n\tb {", "a {\n\tb {\n\t\t"},
		{"configured tabs", func(c *Config) { c.InsertSpaces = false }, "if x:", "if x:\n\t"},
		{"auto-indent off", func(c *Config) { c.AutoIndent = false }, "\tx {", "\tx {\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := manualConfig()
			if tt.config != nil {
				tt.config(&cfg)
			}
			c := manual(WithConfig(cfg))
			c.SetText(tt.text)
			require.True(t, c.SetCursor(rng(textpos.Len(tt.text), 0)))
			require.True(t, c.InsertNewline())
			assert.Equal(t, tt.want, c.Text())
			assert.Equal(t, rng(textpos.Len(tt.want), 0), c.Cursor())
		})
	}
}

func TestInsertTab(t *testing.T) {
	c := manual()
	require.True(t, c.InsertTab())
	assert.Equal(t, "    ", c.Text())
	assert.Equal(t, "    ", c.IndentUnit())

	cfg := manualConfig()
	cfg.InsertSpaces = false
	c = manual(WithConfig(cfg))
	require.True(t, c.InsertTab())
	assert.Equal(t, "\t", c.Text())
}

func TestCloseStopsRecomputation(t *testing.T) {
	c := manual()
	u := listen(c)
	c.SetText("abc")
	c.Close()
	c.Flush()
	assert.Empty(t, u.gotHighlights())
	assert.Empty(t, u.gotLines())
	assert.True(t, c.InsertText("d"), "edits still apply after Close")
}
