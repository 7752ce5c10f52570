package classify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tacticlens/internal/dataset"
	"tacticlens/internal/models"
)

// ErrMissingColumn is returned when the dataset has no statement column at
// all. A row with an empty statement cell is not an error; it simply
// matches nothing.
var ErrMissingColumn = errors.New("statement column not found")

// DefaultStatementColumn is the header the engine looks for when no column
// name is configured.
const DefaultStatementColumn = "Statement"

// Table classifies every row of a table against a tactic snapshot and
// returns a new table with three derived columns appended per tactic, in
// store order: <tactic>_present, <tactic>_count and <tactic>_matches
// (comma-space joined). Row order is preserved and the input table is not
// modified. The raw per-row results are returned alongside the table for
// callers that aggregate them.
//
// Callers must take the tactic snapshot before calling, so a store mutation
// between snapshot and pass cannot produce an inconsistent column set.
func Table(t *dataset.Table, tactics []models.Tactic, column string) (*dataset.Table, [][]models.TacticResult, error) {
	if column == "" {
		column = DefaultStatementColumn
	}
	col, err := statementColumn(t.Columns, column)
	if err != nil {
		return nil, nil, err
	}

	out := &dataset.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for _, tactic := range tactics {
		out.Columns = append(out.Columns,
			tactic.Name+"_present",
			tactic.Name+"_count",
			tactic.Name+"_matches",
		)
	}

	// One classification pass per row; the derived columns are projected
	// from that single result rather than re-scanning the text per column.
	results := make([][]models.TacticResult, len(t.Rows))
	for i := range t.Rows {
		rowResults := Text(t.Cell(i, col), tactics)
		results[i] = rowResults

		row := make([]string, 0, len(out.Columns))
		row = append(row, t.Rows[i]...)
		// Pad short rows so the derived columns land under their headers.
		for len(row) < len(t.Columns) {
			row = append(row, "")
		}
		for _, res := range rowResults {
			row = append(row,
				strconv.FormatBool(res.Present),
				strconv.Itoa(res.Count),
				strings.Join(res.Matches, ", "),
			)
		}
		out.Rows[i] = row
	}
	return out, results, nil
}

// HasStatementColumn reports whether a header set exposes the statement
// column, using the same lookup the table pass uses.
func HasStatementColumn(columns []string, name string) bool {
	if name == "" {
		name = DefaultStatementColumn
	}
	_, err := statementColumn(columns, name)
	return err == nil
}

// statementColumn locates the statement column. An exact header match wins;
// otherwise the first case-insensitive match is used, so "statement" and
// "STATEMENT" headers work without re-uploading.
func statementColumn(columns []string, name string) (int, error) {
	for i, c := range columns {
		if c == name {
			return i, nil
		}
	}
	for i, c := range columns {
		if strings.EqualFold(c, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
