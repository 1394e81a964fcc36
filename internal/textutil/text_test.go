package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences_DropsEmptyPieces(t *testing.T) {
	got := Sentences("Built APIs.  Led a team!!  ... Shipped it?")
	assert.Equal(t, []string{"Built APIs", "Led a team", "Shipped it"}, got)
}

func TestSentences_Empty(t *testing.T) {
	assert.Empty(t, Sentences(""))
	assert.Empty(t, Sentences(" \n\t "))
	assert.Empty(t, Sentences("...!?"))
}

func TestLines_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Lines("a\r\nb\rc"))
}

func TestAtWordBoundary(t *testing.T) {
	text := "Go and Google"
	assert.True(t, AtWordBoundary(text, 0, 2))
	assert.False(t, AtWordBoundary(text, 7, 9))
}

func TestCountFold(t *testing.T) {
	assert.Equal(t, 2, CountFold("python and python3", "Python"))
	assert.Equal(t, 0, CountFold("anything", ""))
}

func TestSanitize_ReplacesInvalidUTF8(t *testing.T) {
	got := Sanitize("ok\xffok")
	assert.Equal(t, "ok ok", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "hi", Truncate("hi", 10))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 66.7, RoundTo(66.6666, 1))
	assert.Equal(t, 14.29, RoundTo(14.285714, 2))
}
