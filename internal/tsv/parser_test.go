package tsv

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Airline table", func(t *testing.T) {
		text := "ICAO code\tIATA code\t航空会社名\tAirline name\tCountry\n" +
			"ANA\tNH\t全日本空輸\tAll Nippon Airways\tJapan\n" +
			"JAL\tJL\t日本航空\tJapan Airlines\tJapan\n"

		records := Parse(text)
		require.Len(t, records, 2)
		assert.Equal(t, "ANA", records[0]["ICAO code"])
		assert.Equal(t, "全日本空輸", records[0]["航空会社名"])
		assert.Equal(t, "Japan Airlines", records[1]["Airline name"])
	})

	t.Run("Field count mismatch is dropped", func(t *testing.T) {
		records := Parse("A\tB\tC\nx\ty")
		assert.Empty(t, records)
		assert.NotNil(t, records)
	})

	t.Run("Only malformed rows are dropped", func(t *testing.T) {
		text := "A\tB\n1\t2\n3\n4\t5\t6\n7\t8"
		records := Parse(text)
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0]["A"])
		assert.Equal(t, "8", records[1]["B"])
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, Parse(""))
		assert.Empty(t, Parse("\n\n  \n"))
	})

	t.Run("Header only", func(t *testing.T) {
		assert.Empty(t, Parse("ICAO code\tIATA code\t航空会社名"))
	})

	t.Run("Surrounding blank lines are trimmed", func(t *testing.T) {
		records := Parse("\n\nA\tB\n1\t2\n\n\n")
		require.Len(t, records, 1)
		assert.Equal(t, Record{"A": "1", "B": "2"}, records[0])
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		records := Parse("A\tB\r\n1\t2\r\n3\t4\r\n")
		require.Len(t, records, 2)
		assert.Equal(t, "2", records[0]["B"])
		assert.Equal(t, "4", records[1]["B"])
	})

	t.Run("Byte order mark on header", func(t *testing.T) {
		records := Parse("\uFEFFCountry\t国名\nJapan\t日本")
		require.Len(t, records, 1)
		assert.Equal(t, "Japan", records[0]["Country"])
	})

	t.Run("Decomposed header is normalised", func(t *testing.T) {
		// "ブ" written as base kana + combining voiced mark
		records := Parse("\u30d5\u3099\nx")
		require.Len(t, records, 1)
		assert.Equal(t, "x", records[0]["\u30d6"])
	})

	t.Run("Values are not coerced", func(t *testing.T) {
		records := Parse("W(cm)\tLength(cm)\n 55 \tN/A")
		require.Len(t, records, 1)
		assert.Equal(t, " 55 ", records[0]["W(cm)"])
		assert.Equal(t, "N/A", records[0]["Length(cm)"])
	})

	t.Run("Empty cells are kept", func(t *testing.T) {
		records := Parse("A\tB\tC\n\t\t\nx\ty\tz")
		require.Len(t, records, 2)
		assert.Equal(t, Record{"A": "", "B": "", "C": ""}, records[0])
		assert.Equal(t, "z", records[1]["C"])
	})
}

func TestParse_RoundTrip(t *testing.T) {
	headers := []string{"ICAO code", "W(cm)", "H(cm)", "D(cm)"}

	for _, n := range []int{0, 1, 7, 250} {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			var b strings.Builder
			b.WriteString(strings.Join(headers, "\t"))
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "\nX%03d\t%d\t40\t25", i, 50+i%10)
			}

			records := Parse(b.String())
			require.Len(t, records, n)
			for i, r := range records {
				assert.Len(t, r, len(headers))
				for _, h := range headers {
					assert.Contains(t, r, h)
				}
				assert.Equal(t, fmt.Sprintf("X%03d", i), r["ICAO code"])
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReader(t *testing.T) {
	records, err := ParseReader(strings.NewReader("Country\t国名\tArea\t地域\nJapan\t日本\tEast Asia\t東アジア\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "東アジア", records[0].Get("地域"))
	assert.Equal(t, "", records[0].Get("missing"))

	_, err = ParseReader(failingReader{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
