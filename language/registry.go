package language

import (
	"path/filepath"
	"strings"
)

// Detect returns the language for a filename, matching by extension.
// Unknown extensions are plain text.
func Detect(filename string) ID {
	base := strings.ToLower(filepath.Base(filename))
	for _, d := range definitions {
		if d == nil {
			continue
		}
		for _, ext := range d.Extensions {
			if strings.HasSuffix(base, ext) {
				return d.ID
			}
		}
	}
	return Plain
}

// DetectByShebang checks the first line of content for a registered shebang.
func DetectByShebang(firstLine string) ID {
	for _, d := range definitions {
		if d == nil {
			continue
		}
		for _, shebang := range d.Shebangs {
			if strings.HasPrefix(firstLine, shebang) {
				return d.ID
			}
		}
	}
	return Plain
}

// DetectContent tries the filename first and falls back to the shebang on the
// first line of text.
func DetectContent(filename, text string) ID {
	if id := Detect(filename); id != Plain {
		return id
	}
	first, _, _ := strings.Cut(text, "\n")
	return DetectByShebang(first)
}
