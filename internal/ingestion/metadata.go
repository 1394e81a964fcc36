package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Document describes an ingested document.
type Document struct {
	Filename    string `json:"filename,omitempty"`
	URL         string `json:"url,omitempty"`
	ContentType string `json:"content_type"`
	Hash        string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Chars       int    `json:"chars"`     // rune count of the cleaned text
	Timestamp   string `json:"timestamp"` // RFC3339
}

// NewDocument describes cleaned text with the current timestamp.
func NewDocument(filename, contentType, text string) *Document {
	return &Document{
		Filename:    filename,
		ContentType: contentType,
		Hash:        ContentHash(text),
		Chars:       utf8.RuneCountInString(text),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

// ContentHash returns the SHA256 hex digest of text.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
