package style

// NeutralReadability is reported for text without sentences.
const NeutralReadability = 50.0

// Readability maps the average sentence length to a fixed score. The 15 to 20
// word band scores highest.
func Readability(avgWordsPerSentence float64, sentences int) float64 {
	if sentences == 0 {
		return NeutralReadability
	}
	avg := avgWordsPerSentence
	switch {
	case avg >= 15 && avg <= 20:
		return 100
	case avg >= 10 && avg < 15:
		return 90
	case avg > 20 && avg <= 25:
		return 85
	case avg > 25 && avg <= 30:
		return 70
	default:
		return 60
	}
}
