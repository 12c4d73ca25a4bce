package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyTable indicates input without any data rows.
	ErrEmptyTable = errors.New("ingest: empty table")
	// ErrWaveColumn indicates a wavelength column index outside the table.
	ErrWaveColumn = errors.New("ingest: wavelength column out of range")
)

// Table is a rectangular numeric table with the wavelength column split out.
// Columns[i] holds one value per entry of Waves; missing cells are NaN.
type Table struct {
	Headers []string
	Waves   []float64
	Columns [][]float64
}

// NewTable splits rows into wavelengths and value columns. headers, when
// given, name every input column including the wavelength column. Short rows
// are padded with NaN.
func NewTable(rows [][]float64, waveCol int, headers []string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	width := len(headers)
	for _, row := range rows {
		width = max(width, len(row))
	}
	if waveCol < 0 || waveCol >= width {
		return nil, fmt.Errorf("%w: column %d of %d", ErrWaveColumn, waveCol, width)
	}

	t := &Table{
		Waves:   make([]float64, len(rows)),
		Columns: make([][]float64, width-1),
	}
	for c := range t.Columns {
		t.Columns[c] = make([]float64, len(rows))
	}
	for r, row := range rows {
		for c := 0; c < width; c++ {
			v := math.NaN()
			if c < len(row) {
				v = row[c]
			}
			switch {
			case c == waveCol:
				t.Waves[r] = v
			case c < waveCol:
				t.Columns[c][r] = v
			default:
				t.Columns[c-1][r] = v
			}
		}
	}

	if len(headers) > 0 {
		t.Headers = make([]string, 0, width-1)
		for c := 0; c < width; c++ {
			if c == waveCol {
				continue
			}
			h := ""
			if c < len(headers) {
				h = strings.TrimSpace(headers[c])
			}
			t.Headers = append(t.Headers, h)
		}
	}
	return t, nil
}

// Header returns the header of value column i, or "" when unnamed.
func (t *Table) Header(i int) string {
	if i < len(t.Headers) {
		return t.Headers[i]
	}
	return ""
}

// ParseText reads comma, semicolon, tab or whitespace separated text. The
// first line is a header when its first cell is not a number. Blank or
// non-numeric cells become NaN.
func ParseText(r io.Reader, waveCol int) (*Table, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyTable
	}

	split := splitter(lines[0])
	var headers []string
	first, err := split(lines[0])
	if err != nil {
		return nil, err
	}
	if len(first) > 0 && !isNumber(first[0]) {
		headers = first
		lines = lines[1:]
	}

	rows := make([][]float64, 0, len(lines))
	for n, line := range lines {
		cells, err := split(line)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", n+1, err)
		}
		row := make([]float64, len(cells))
		for i, cell := range cells {
			row[i] = parseCell(cell)
		}
		rows = append(rows, row)
	}
	return NewTable(rows, waveCol, headers)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read table: %w", err)
	}
	return lines, nil
}

// splitter picks the delimiter from the first line: tab, then comma, then
// semicolon, otherwise runs of whitespace.
func splitter(line string) func(string) ([]string, error) {
	for _, sep := range []rune{'\t', ',', ';'} {
		if strings.ContainsRune(line, sep) {
			return func(s string) ([]string, error) {
				cr := csv.NewReader(strings.NewReader(s))
				cr.Comma = sep
				cr.FieldsPerRecord = -1
				cr.LazyQuotes = true
				cr.TrimLeadingSpace = true
				return cr.Read()
			}
		}
	}
	return func(s string) ([]string, error) { return strings.Fields(s), nil }
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
