package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	excessBlankLines = regexp.MustCompile(`\n\n\n+`)
	controlChars     = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
)

// CleanText normalizes line endings, drops control characters, trims trailing
// whitespace, and collapses runs of blank lines to one. Leading indentation
// and interior runs of spaces are kept because table detection reads them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ToValidUTF8(content, "")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = controlChars.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.Trim(result, "\n ")
}

// cleanLine trims trailing whitespace and normalizes bullet glyphs to "• ".
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if isBulletLine(trimmed) {
		indent := line[:len(line)-len(trimmed)]
		_, rest, _ := strings.Cut(trimmed, " ")
		return indent + "• " + strings.TrimLeft(rest, " \t")
	}
	return line
}

// isBulletLine checks if a trimmed line starts with a bullet marker.
func isBulletLine(trimmed string) bool {
	for _, marker := range []string{"- ", "* ", "• ", "· ", "▪ ", "◦ "} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// ReadFile reads a document from disk and returns its cleaned text along with
// document metadata. The type is detected from the file extension.
func ReadFile(path string) (string, *Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(path)
	contentType := DetectType("", name)
	text, err := ExtractText(contentType, name, data)
	if err != nil {
		return "", nil, err
	}
	return text, NewDocument(name, contentType, text), nil
}
