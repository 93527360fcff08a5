// Package tsv parses the tab-separated reference tables into records
// keyed by column name.
package tsv

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const utf8BOM = "\uFEFF"

// Record maps a column name to the raw cell value of one row
type Record map[string]string

// Parse splits text into records. The first line holds the column names.
// Rows whose field count differs from the header are dropped.
func Parse(text string) []Record {
	records := []Record{}

	text = strings.TrimSpace(text)
	if text == "" {
		return records
	}

	lines := strings.Split(text, "\n")
	headers := parseHeader(lines[0])

	for _, line := range lines[1:] {
		parts := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
		if len(parts) != len(headers) {
			continue
		}

		record := make(Record, len(headers))
		for i, header := range headers {
			record[header] = parts[i]
		}
		records = append(records, record)
	}

	return records
}

// ParseReader reads the whole stream and parses it
func ParseReader(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return Parse(string(data)), nil
}

func parseHeader(line string) []string {
	line = strings.TrimPrefix(strings.TrimSuffix(line, "\r"), utf8BOM)
	headers := strings.Split(line, "\t")
	for i, h := range headers {
		headers[i] = norm.NFC.String(h)
	}
	return headers
}

// Get returns the value of column, or "" when the record lacks it
func (r Record) Get(column string) string {
	return r[column]
}
