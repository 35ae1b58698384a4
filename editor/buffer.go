package editor

import (
	"os"
	"path/filepath"

	"github.com/odvcencio/scribe/textpos"
)

// snapshot is a full copy of the document state taken before an edit.
type snapshot struct {
	text   string
	cursor textpos.Range
}

// Buffer holds the text of one document, its primary cursor and the undo
// and redo history. All offsets are UTF-16 code units. A Buffer is not safe
// for concurrent use.
type Buffer struct {
	path      string // absolute path, or "" if untitled
	text      string
	size      int // len(text) in UTF-16 code units
	cursor    textpos.Range
	undoStack []snapshot
	redoStack []snapshot
}

// NewBuffer creates a new empty, untitled buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Open reads the file at path into the buffer, replacing any existing
// content and history. The stored path is converted to an absolute path.
func (b *Buffer) Open(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}

	b.path = absPath
	b.SetText(string(data))
	return nil
}

// Path returns the absolute file path, or "" if the buffer is untitled.
func (b *Buffer) Path() string {
	return b.path
}

// Text returns the current text content of the buffer.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the length of the text in UTF-16 code units.
func (b *Buffer) Len() int {
	return b.size
}

// Cursor returns the primary cursor. A non-zero length is a selection.
func (b *Buffer) Cursor() textpos.Range {
	return b.cursor
}

// SetText replaces the whole document. History is discarded and the cursor
// moves to the start.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.size = textpos.Len(text)
	b.cursor = textpos.Range{}
	b.undoStack = nil
	b.redoStack = nil
}

// SetCursor moves the primary cursor. It reports false and leaves the
// cursor alone if r does not resolve against the current text.
func (b *Buffer) SetCursor(r textpos.Range) bool {
	if _, _, ok := textpos.Resolve(b.text, r); !ok {
		return false
	}
	b.cursor = r
	return true
}

// Replace swaps the text under r for text and leaves a zero-length cursor
// just after the inserted text. The previous state is pushed on the undo
// stack and the redo stack is cleared. It reports false without touching
// anything if r does not resolve or the edit would change nothing.
func (b *Buffer) Replace(r textpos.Range, text string) bool {
	start, end, ok := textpos.Resolve(b.text, r)
	if !ok {
		return false
	}
	if start == end && text == "" {
		return false
	}

	b.undoStack = append(b.undoStack, snapshot{text: b.text, cursor: b.cursor})
	b.redoStack = nil
	b.text = b.text[:start] + text + b.text[end:]
	n := textpos.Len(text)
	b.size += n - r.Length
	b.cursor = textpos.Range{Offset: r.Offset + n}
	return true
}

// Insert inserts text at the cursor offset. A selection under the cursor is
// left in place.
func (b *Buffer) Insert(text string) bool {
	return b.Replace(textpos.Range{Offset: b.cursor.Offset}, text)
}

// Delete removes the text under r.
func (b *Buffer) Delete(r textpos.Range) bool {
	return b.Replace(r, "")
}

// Undo restores the state before the last edit. Returns true if an edit was
// undone, false if the undo stack is empty.
func (b *Buffer) Undo() bool {
	if len(b.undoStack) == 0 {
		return false
	}
	s := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.redoStack = append(b.redoStack, b.snapshot())
	b.restore(s)
	return true
}

// Redo reapplies the last undone edit. Returns true if an edit was redone,
// false if the redo stack is empty.
func (b *Buffer) Redo() bool {
	if len(b.redoStack) == 0 {
		return false
	}
	s := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.undoStack = append(b.undoStack, b.snapshot())
	b.restore(s)
	return true
}

// CanUndo reports whether there is an edit to undo.
func (b *Buffer) CanUndo() bool {
	return len(b.undoStack) > 0
}

// CanRedo reports whether there is an undone edit to reapply.
func (b *Buffer) CanRedo() bool {
	return len(b.redoStack) > 0
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{text: b.text, cursor: b.cursor}
}

func (b *Buffer) restore(s snapshot) {
	b.text = s.text
	b.size = textpos.Len(s.text)
	b.cursor = s.cursor
}
