package analyze

import (
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{400, 2},
		{401, 3},
	}
	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d): expected %d, got %d", tt.words, tt.want, got)
		}
	}
}

func TestComputeStatistics(t *testing.T) {
	text := "# Title\n\nSome prose here.\n<!-- note -->\n```go\nfunc main() {}\nreturn\n```\n"
	s := ComputeStatistics(text)

	if s.TotalLines != 9 {
		t.Errorf("expected 9 total lines, got %d", s.TotalLines)
	}
	if s.EmptyLines != 2 {
		t.Errorf("expected 2 empty lines, got %d", s.EmptyLines)
	}
	if s.ContentLines != 7 {
		t.Errorf("expected 7 content lines, got %d", s.ContentLines)
	}
	if s.CodeLines != 2 {
		t.Errorf("expected 2 code lines, got %d", s.CodeLines)
	}
	if s.CommentLines != 1 {
		t.Errorf("expected 1 comment line, got %d", s.CommentLines)
	}
	// "#", "Title", "Some", "prose", "here.", "<!--", "note", "-->"
	if s.WordCount != 8 {
		t.Errorf("expected 8 words, got %d", s.WordCount)
	}
	if s.ReadingTimeMinutes != 1 {
		t.Errorf("expected 1 minute, got %d", s.ReadingTimeMinutes)
	}
}

func TestComputeStatisticsEmptyFence(t *testing.T) {
	s := ComputeStatistics("``````")
	if s.CodeLines != 0 {
		t.Errorf("expected 0 code lines, got %d", s.CodeLines)
	}
}

func TestComputeStatisticsCharactersExcludeCode(t *testing.T) {
	s := ComputeStatistics("héllo\n```\nlots of code here\n```")
	if s.CharacterCount != len([]rune("héllo\n")) {
		t.Errorf("expected %d characters, got %d", len([]rune("héllo\n")), s.CharacterCount)
	}
	if s.WordCount != 1 {
		t.Errorf("expected 1 word, got %d", s.WordCount)
	}
}

func TestComputeStatisticsCRLF(t *testing.T) {
	a := ComputeStatistics("one\r\ntwo\r\n\r\nthree")
	b := ComputeStatistics("one\ntwo\n\nthree")
	if a != b {
		t.Errorf("expected CRLF and LF to match, got %+v vs %+v", a, b)
	}
}

func TestStatisticsAdd(t *testing.T) {
	a := ComputeStatistics(strings.Repeat("word ", 150))
	b := ComputeStatistics(strings.Repeat("word ", 150))
	sum := a.Add(b)
	if sum.WordCount != 300 {
		t.Errorf("expected 300 words, got %d", sum.WordCount)
	}
	if sum.ReadingTimeMinutes != 2 {
		t.Errorf("expected 2 minutes, got %d", sum.ReadingTimeMinutes)
	}
}
