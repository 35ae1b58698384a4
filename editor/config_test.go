package editor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 4, c.TabWidth)
	assert.True(t, c.InsertSpaces)
	assert.True(t, c.AutoIndent)
	assert.True(t, c.AutoCloseBrackets)
	assert.False(t, c.WordWrap)
	assert.Equal(t, 100*time.Millisecond, c.Debounce)
	assert.NoError(t, c.Validate())
	assert.Equal(t, "    ", c.IndentUnit())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tab_width: 2\ninsert_spaces: false\nword_wrap: true\ndebounce: 150ms\n"), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.TabWidth)
	assert.False(t, c.InsertSpaces)
	assert.True(t, c.WordWrap)
	assert.True(t, c.AutoIndent, "missing keys keep their defaults")
	assert.Equal(t, 150*time.Millisecond, c.Debounce)
	assert.Equal(t, "\t", c.IndentUnit())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "tab_width: [", "failed to parse config YAML"},
		{"bad duration", "debounce: soon", "failed to parse config YAML"},
		{"tab width too small", "tab_width: 0", "tab_width must be between 1 and 16"},
		{"tab width too large", "tab_width: 17", "tab_width must be between 1 and 16"},
		{"negative debounce", "debounce: -1s", "debounce must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseEmptyConfig(t *testing.T) {
	c, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}
