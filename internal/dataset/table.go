// Package dataset provides the tabular model for uploaded and annotated
// data: a header row plus string cells, read from and written to CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrEmpty is returned when a CSV input has no header row.
var ErrEmpty = errors.New("dataset has no header row")

// ErrRowTooWide is returned when a record carries more fields than the
// header. Accepting it would shift appended columns out from under their
// headers, so over-wide rows are rejected at ingest.
var ErrRowTooWide = errors.New("row has more fields than the header")

// Table is an in-memory tabular dataset. Rows are padded to the header
// width on read, so Rows[i][j] is safe for any column index.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ReadCSV parses a CSV document. The first record is the header; short
// records are padded with empty cells up to the header width, records wider
// than the header fail with ErrRowTooWide.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrRowTooWide, len(t.Rows)+1, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// WriteCSV serializes the table, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Cell returns the cell at (row, col), or "" when the row is shorter than
// the header.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Preview returns a copy of the table truncated to at most n rows.
func (t *Table) Preview(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	p := &Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows[:n] {
		p.Rows = append(p.Rows, append([]string(nil), row...))
	}
	return p
}
