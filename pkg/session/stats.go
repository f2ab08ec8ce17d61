package session

import (
	"strings"
	"unicode/utf8"
)

// DefaultWordsPerMinute is the reading speed used for reading-time estimates.
const DefaultWordsPerMinute = 200

// Stats are the derived, read-only statistics of a text.
type Stats struct {
	Words          int `json:"words"`
	Characters     int `json:"characters"`
	ReadingMinutes int `json:"reading_minutes"`
}

// WordCount counts maximal runs of non-whitespace characters. Empty and
// all-whitespace text has zero words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharacterCount counts the Unicode code points of s, whitespace included.
func CharacterCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ReadingMinutes returns ceil(words / wpm). Zero words read in zero minutes.
// A non-positive wpm falls back to DefaultWordsPerMinute.
func ReadingMinutes(words, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	if words <= 0 {
		return 0
	}
	return (words + wpm - 1) / wpm
}

// Analyze computes Stats at the default reading speed.
func Analyze(s string) Stats {
	return AnalyzeAt(s, DefaultWordsPerMinute)
}

// AnalyzeAt computes Stats at the given reading speed.
func AnalyzeAt(s string, wpm int) Stats {
	words := WordCount(s)
	return Stats{
		Words:          words,
		Characters:     CharacterCount(s),
		ReadingMinutes: ReadingMinutes(words, wpm),
	}
}
