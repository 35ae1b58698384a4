package editor

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDebounce is the idle time after an edit before highlighting runs.
const DefaultDebounce = 100 * time.Millisecond

// Config holds the editing preferences consulted by the controller. None of
// them change how text is highlighted or completed.
type Config struct {
	TabWidth          int           `yaml:"tab_width"`
	InsertSpaces      bool          `yaml:"insert_spaces"`
	AutoIndent        bool          `yaml:"auto_indent"`
	AutoCloseBrackets bool          `yaml:"auto_close_brackets"`
	WordWrap          bool          `yaml:"word_wrap"`
	Debounce          time.Duration `yaml:"debounce"`
}

// DefaultConfig returns the built-in preferences.
func DefaultConfig() Config {
	return Config{
		TabWidth:          4,
		InsertSpaces:      true,
		AutoIndent:        true,
		AutoCloseBrackets: true,
		Debounce:          DefaultDebounce,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the values are usable.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	return nil
}

// IndentUnit returns one level of indentation.
func (c Config) IndentUnit() string {
	if c.InsertSpaces {
		return strings.Repeat(" ", c.TabWidth)
	}
	return "\t"
}
