package editor

import "strings"

// ComputeIndent returns the indentation string to use for a new line after
// the given line. It copies the existing indent and adds one unit if the line
// ends with an opening bracket ({, (, [) or a colon after trimming trailing
// whitespace.
func ComputeIndent(line, unit string) string {
	end := 0
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	indent := line[:end]

	trimmed := strings.TrimRight(line, " \t")
	if len(trimmed) > 0 {
		switch trimmed[len(trimmed)-1] {
		case '{', '(', '[', ':':
			indent += unit
		}
	}
	return indent
}

// DetectIndentStyle looks at the text to determine whether tabs or spaces are
// used for indentation. Returns the indent unit string (e.g., "\t" or "    ")
// and false if no indented line was found.
func DetectIndentStyle(text string) (string, bool) {
	tabCount := 0
	spaceCount := 0
	minSpaceWidth := 0

	for _, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '\t':
			tabCount++
		case ' ':
			w := len(line) - len(strings.TrimLeft(line, " "))
			if w == len(line) {
				continue
			}
			spaceCount++
			if minSpaceWidth == 0 || w < minSpaceWidth {
				minSpaceWidth = w
			}
		}
	}

	switch {
	case spaceCount > tabCount:
		return strings.Repeat(" ", minSpaceWidth), true
	case tabCount > 0:
		return "\t", true
	}
	return "", false
}
