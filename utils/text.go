package utils

import "strings"

// TruncateText cuts text at maxChars and appends marker when anything was
// dropped. A non-positive maxChars leaves the text untouched.
func TruncateText(text string, maxChars int, marker string) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + marker
}

// Preview returns the first n characters of text with surrounding
// whitespace trimmed.
func Preview(text string, n int) string {
	if n > 0 && len(text) > n {
		text = text[:n]
	}
	return strings.TrimSpace(text)
}
