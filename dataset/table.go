/*
Package dataset provides the in-memory table of categorical samples
from which decision trees are grown.

A table is an ordered sequence of rows of equal width. Every row holds
the values for the features followed by a trailing label. Tables are
immutable: subsetting one always produces a new table.
*/
package dataset

import (
	"fmt"
)

// Row is a sequence of feature values followed by a label
type Row []string

// DatasetError represents an error related with tables
type DatasetError string

const (
	// ErrFeatureIndexOutOfRange is returned when an operation refers
	// to a column that is not one of the table's feature columns.
	ErrFeatureIndexOutOfRange = DatasetError("feature index out of range")
	// ErrRowWidthMismatch is returned when the rows given to build a
	// table do not all have the same number of columns.
	ErrRowWidthMismatch = DatasetError("rows have different widths")
	// ErrNoLabelColumn is returned when building a table from rows
	// without any column, not even the label one.
	ErrNoLabelColumn = DatasetError("rows have no label column")
)

func (de DatasetError) Error() string {
	return string(de)
}

/*
Table is an immutable collection of rows that share the same width.
The last column of every row is the label, the rest are feature
columns.
*/
type Table struct {
	rows  []Row
	width int
}

/*
New takes a slice of rows and returns a table holding a copy of them or
an error if the rows have different widths or no columns at all. An
empty slice of rows is an error too, as it defines no width; use Empty
to build a table without rows.
*/
func New(rows []Row) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("building table: %w", ErrNoLabelColumn)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("building table: %w", ErrNoLabelColumn)
	}
	copied := make([]Row, 0, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("building table: row %d has %d columns, expected %d: %w", i, len(r), width, ErrRowWidthMismatch)
		}
		copied = append(copied, append(Row(nil), r...))
	}
	return &Table{rows: copied, width: width}, nil
}

/*
Empty takes the number of feature columns and returns a table without
rows whose rows would have that number of features plus a label.
*/
func Empty(featureCount int) *Table {
	if featureCount < 0 {
		featureCount = 0
	}
	return &Table{width: featureCount + 1}
}

// Count returns the number of rows in the table
func (t *Table) Count() int {
	return len(t.rows)
}

// FeatureCount returns the number of non-label columns of the table
func (t *Table) FeatureCount() int {
	return t.width - 1
}

/*
Row returns a copy of the i-th row of the table. It panics if i is out
of range, like indexing a slice would.
*/
func (t *Table) Row(i int) Row {
	return append(Row(nil), t.rows[i]...)
}

// Label returns the label of the i-th row of the table
func (t *Table) Label(i int) string {
	return t.rows[i][t.width-1]
}

// Value returns the value for the feature column j on the i-th row
func (t *Table) Value(i, j int) string {
	return t.rows[i][j]
}

/*
LabelCounts returns a map with the number of rows bearing each
distinct label.
*/
func (t *Table) LabelCounts() map[string]int {
	result := make(map[string]int)
	for _, r := range t.rows {
		result[r[t.width-1]]++
	}
	return result
}

/*
FeatureValues takes the index of a feature column and returns the
distinct values found in it, in order of first occurrence, or an error
if the index is not a feature column.
*/
func (t *Table) FeatureValues(featureIndex int) ([]string, error) {
	if err := t.checkFeatureIndex(featureIndex); err != nil {
		return nil, err
	}
	result := []string{}
	encountered := make(map[string]bool)
	for _, r := range t.rows {
		v := r[featureIndex]
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result, nil
}

/*
CountFeatureValues takes the index of a feature column and returns a map
with the number of rows holding each value in it, or an error if the
index is not a feature column.
*/
func (t *Table) CountFeatureValues(featureIndex int) (map[string]int, error) {
	if err := t.checkFeatureIndex(featureIndex); err != nil {
		return nil, err
	}
	result := make(map[string]int)
	for _, r := range t.rows {
		result[r[featureIndex]]++
	}
	return result, nil
}

func (t *Table) checkFeatureIndex(featureIndex int) error {
	if featureIndex < 0 || featureIndex >= t.FeatureCount() {
		return fmt.Errorf("feature column %d on table with %d features: %w", featureIndex, t.FeatureCount(), ErrFeatureIndexOutOfRange)
	}
	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("{Table rows: %d features: %d}", len(t.rows), t.FeatureCount())
}
