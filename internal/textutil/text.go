// Package textutil holds the small text primitives shared by the analyzers.
package textutil

import (
	"math"
	"regexp"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Sanitize replaces invalid UTF-8 sequences so later scans never see broken runes.
func Sanitize(s string) string {
	return strings.ToValidUTF8(s, " ")
}

// Words splits on any run of whitespace.
func Words(s string) []string {
	return strings.Fields(s)
}

// WordCount returns the number of whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Sentences splits on runs of terminal punctuation and drops empty pieces.
func Sentences(s string) []string {
	parts := sentenceSplit.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Lines splits on LF after normalizing CRLF and CR line endings.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// CountFold counts non-overlapping, case-insensitive occurrences of needle in haystack.
// haystackLower must already be lowercased.
func CountFold(haystackLower, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(haystackLower, strings.ToLower(needle))
}

// IsWordByte reports whether b is an ASCII word character, matching regexp \w.
func IsWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// AtWordBoundary reports whether text[start:end] is not glued to neighbouring word characters.
func AtWordBoundary(text string, start, end int) bool {
	if start > 0 && IsWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && IsWordByte(text[end]) {
		return false
	}
	return true
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
