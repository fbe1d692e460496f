package analyze

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed behind ReadingTimeMinutes.
const WordsPerMinute = 200

// Statistics are line, word and character counts for one document.
type Statistics struct {
	TotalLines         int `json:"totalLines"`
	ContentLines       int `json:"contentLines"`
	CodeLines          int `json:"codeLines"`
	CommentLines       int `json:"commentLines"`
	EmptyLines         int `json:"emptyLines"`
	WordCount          int `json:"wordCount"`
	CharacterCount     int `json:"characterCount"`
	ReadingTimeMinutes int `json:"readingTimeMinutes"`
}

// fenceRe matches paired triple-backtick regions, left to right, without overlap.
var fenceRe = regexp.MustCompile("(?s)```.*?```")

// ComputeStatistics is a pure function of text.
func ComputeStatistics(text string) Statistics {
	text = normalizeNewlines(text)
	lines := strings.Split(text, "\n")

	s := Statistics{TotalLines: len(lines)}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			s.EmptyLines++
		}
		if strings.HasPrefix(trimmed, "<!--") || strings.HasPrefix(trimmed, "-->") {
			s.CommentLines++
		}
	}
	s.ContentLines = s.TotalLines - s.EmptyLines

	for _, region := range fenceRe.FindAllString(text, -1) {
		spanLines := strings.Count(region, "\n") + 1
		s.CodeLines += max(spanLines-2, 0)
	}

	prose := StripFences(text)
	s.WordCount = len(strings.Fields(prose))
	s.CharacterCount = utf8.RuneCountInString(prose)
	s.ReadingTimeMinutes = ReadingTime(s.WordCount)
	return s
}

// ReadingTime rounds up to whole minutes; zero words read in zero minutes.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// StripFences removes every fenced code region from text.
func StripFences(text string) string {
	return fenceRe.ReplaceAllString(text, "")
}

// Add accumulates another document's counts.
func (s Statistics) Add(o Statistics) Statistics {
	s.TotalLines += o.TotalLines
	s.ContentLines += o.ContentLines
	s.CodeLines += o.CodeLines
	s.CommentLines += o.CommentLines
	s.EmptyLines += o.EmptyLines
	s.WordCount += o.WordCount
	s.CharacterCount += o.CharacterCount
	s.ReadingTimeMinutes = ReadingTime(s.WordCount)
	return s
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
