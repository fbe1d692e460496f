package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVLoader renders a CSV file as a pipe table. The first record is the header.
type CSVLoader struct{}

func (l *CSVLoader) Load(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	headers := records[0]
	width := len(headers)
	for _, row := range records[1:] {
		width = max(width, len(row))
	}

	var b strings.Builder
	writeRow(&b, headers, width)
	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep, width)
	for _, row := range records[1:] {
		writeRow(&b, row, width)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func writeRow(b *strings.Builder, cells []string, width int) {
	b.WriteString("|")
	for i := 0; i < width; i++ {
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(strings.TrimSpace(cells[i]), "|", "/")
		}
		b.WriteString(" " + cell + " |")
	}
	b.WriteString("\n")
}
