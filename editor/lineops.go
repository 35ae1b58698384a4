package editor

import "strings"

// LineCount returns the number of lines in the text.
// An empty string is considered to have 1 line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// LineNumbers returns the sequence 1..LineCount(text).
func LineNumbers(text string) []int {
	n := LineCount(text)
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// lineBefore returns the part of the line that ends at byte offset at.
func lineBefore(text string, at int) string {
	start := strings.LastIndexByte(text[:at], '\n') + 1
	return text[start:at]
}
