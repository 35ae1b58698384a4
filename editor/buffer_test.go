package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/scribe/textpos"
)

func rng(offset, length int) textpos.Range {
	return textpos.Range{Offset: offset, Length: length}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, "", b.Text())
	assert.Equal(t, "", b.Path())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, rng(0, 0), b.Cursor())
	assert.False(t, b.CanUndo())
	assert.False(t, b.CanRedo())
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	content := "hello, world\nsecond line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	b := NewBuffer()
	b.Insert("scratch")
	require.NoError(t, b.Open(path))
	assert.Equal(t, content, b.Text())
	assert.True(t, filepath.IsAbs(b.Path()))
	assert.False(t, b.CanUndo(), "opening a file discards history")
}

func TestOpenMissingFile(t *testing.T) {
	b := NewBuffer()
	assert.Error(t, b.Open(filepath.Join(t.TempDir(), "nope.txt")))
	assert.Equal(t, "", b.Path())
}

func TestInsertAndUndo(t *testing.T) {
	b := NewBuffer()
	b.SetText("abc")
	require.True(t, b.SetCursor(rng(3, 0)))

	require.True(t, b.Insert("d"))
	assert.Equal(t, "abcd", b.Text())
	assert.Equal(t, rng(4, 0), b.Cursor())

	require.True(t, b.Undo())
	assert.Equal(t, "abc", b.Text())
	assert.Equal(t, rng(3, 0), b.Cursor())
	assert.False(t, b.Undo())
}

func TestInsertKeepsSelectionText(t *testing.T) {
	b := NewBuffer()
	b.SetText("hello")
	require.True(t, b.SetCursor(rng(1, 3)))
	require.True(t, b.Insert("X"))
	assert.Equal(t, "hXello", b.Text())
	assert.Equal(t, rng(2, 0), b.Cursor())
}

func TestDeleteAndReplaceCursor(t *testing.T) {
	b := NewBuffer()
	b.SetText("hello world")

	require.True(t, b.Delete(rng(0, 6)))
	assert.Equal(t, "world", b.Text())
	assert.Equal(t, rng(0, 0), b.Cursor())

	require.True(t, b.Replace(rng(0, 5), "there"))
	assert.Equal(t, "there", b.Text())
	assert.Equal(t, rng(5, 0), b.Cursor())
}

func TestInvalidRangesAreNoOps(t *testing.T) {
	b := NewBuffer()
	b.SetText("a😀b")
	require.True(t, b.SetCursor(rng(1, 0)))

	for _, r := range []textpos.Range{
		rng(-1, 1),
		rng(0, -1),
		rng(5, 0),
		rng(3, 2),
		rng(2, 1), // inside the surrogate pair
		rng(0, 2), // ends inside the surrogate pair
	} {
		assert.False(t, b.Replace(r, "x"), "Replace(%v)", r)
		assert.False(t, b.Delete(r), "Delete(%v)", r)
		assert.False(t, b.SetCursor(r), "SetCursor(%v)", r)
	}
	assert.Equal(t, "a😀b", b.Text())
	assert.Equal(t, rng(1, 0), b.Cursor())
	assert.False(t, b.CanUndo())
}

func TestEmptyEditsAreNotRecorded(t *testing.T) {
	b := NewBuffer()
	b.SetText("abc")
	assert.False(t, b.Insert(""))
	assert.False(t, b.Delete(rng(1, 0)))
	assert.False(t, b.CanUndo())
}

func TestUTF16Lengths(t *testing.T) {
	b := NewBuffer()
	b.SetText("😀")
	assert.Equal(t, 2, b.Len())
	require.True(t, b.SetCursor(rng(2, 0)))
	require.True(t, b.Insert("é😀"))
	assert.Equal(t, "😀é😀", b.Text())
	assert.Equal(t, rng(5, 0), b.Cursor())
	assert.Equal(t, 5, b.Len())
	require.True(t, b.Delete(rng(0, 2)))
	assert.Equal(t, 3, b.Len())
}

func TestUndoRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.SetText("func main() {}")
	require.True(t, b.SetCursor(rng(4, 0)))
	before, cursor := b.Text(), b.Cursor()

	edits := []func() bool{
		func() bool { return b.Insert(" x") },
		func() bool { return b.Delete(rng(0, 5)) },
		func() bool { return b.Replace(rng(2, 3), "yy") },
		func() bool { return b.Insert("\n") },
	}
	for _, edit := range edits {
		require.True(t, edit())
	}
	for range edits {
		require.True(t, b.Undo())
	}
	assert.Equal(t, before, b.Text())
	assert.Equal(t, cursor, b.Cursor())
}

func TestRedo(t *testing.T) {
	b := NewBuffer()
	b.Insert("a")
	b.Insert("b")
	require.True(t, b.Undo())
	assert.Equal(t, "a", b.Text())
	require.True(t, b.Redo())
	assert.Equal(t, "ab", b.Text())
	assert.Equal(t, rng(2, 0), b.Cursor())
	assert.False(t, b.Redo())

	require.True(t, b.Undo())
	require.True(t, b.Insert("c"))
	assert.False(t, b.CanRedo(), "a new edit clears redo")
	assert.Equal(t, "ac", b.Text())
}

func TestSetTextClearsHistory(t *testing.T) {
	b := NewBuffer()
	b.Insert("abc")
	b.Undo()
	b.SetText("new")
	assert.False(t, b.CanUndo())
	assert.False(t, b.CanRedo())
	assert.Equal(t, rng(0, 0), b.Cursor())
}
