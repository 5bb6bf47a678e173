/*
Package sqldataset loads tables from SQL databases and stores them.

A database table holds one row per sample, with a text column for
every feature followed by a text column for the label, in that order.
Column names are the feature names. The adapters in the sqlite3adapter
and pgadapter subpackages provide the connections.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset"
)

/*
ErrMissingValue is the error returned when a stored sample does not
define a value for one of its columns.
*/
const ErrMissingValue = dataset.DatasetError("missing value")

/*
Adapter is an interface providing the connection and dialect details
needed to read and write tables on a database backend.
*/
type Adapter interface {
	// DB returns the connection pool to the database
	DB() *sql.DB
	// QuoteIdentifier takes a table or column name and returns
	// it quoted for use in statements, or an error if the name
	// cannot be used.
	QuoteIdentifier(string) (string, error)
	// Placeholder returns the placeholder for the i-th (from 1)
	// parameter of a statement.
	Placeholder(i int) string
	// Close closes the connection pool
	Close() error
}

/*
QuoteIdentifier takes a name and returns it between double quotes as
both SQLite3 and PostgreSQL expect identifiers, or an error if the name
is empty or contains a double quote itself.
*/
func QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

/*
Load takes a context, an Adapter and the name of a database table and
returns the table with all its rows, along with the names of its
feature columns (every column but the last), or an error. Values are
read as text; NULL values result in an ErrMissingValue error.
*/
func Load(ctx context.Context, a Adapter, table string) (*dataset.Table, []string, error) {
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return nil, nil, fmt.Errorf("loading table %s: %v", table, err)
	}
	rows, err := a.DB().QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", qt))
	if err != nil {
		return nil, nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("loading table %s: %w", table, dataset.ErrNoLabelColumn)
	}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	var result []dataset.Row
	for rows.Next() {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning row %d of table %s: %v", len(result)+1, table, err)
		}
		r := make(dataset.Row, len(columns))
		for i, v := range values {
			if !v.Valid {
				return nil, nil, fmt.Errorf("row %d of table %s, column %s: %w", len(result)+1, table, columns[i], ErrMissingValue)
			}
			r[i] = v.String
		}
		result = append(result, r)
	}
	err = rows.Err()
	if err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	featureNames := columns[:len(columns)-1]
	if len(result) == 0 {
		return dataset.Empty(len(featureNames)), featureNames, nil
	}
	t, err := dataset.New(result)
	if err != nil {
		return nil, nil, err
	}
	return t, featureNames, nil
}

/*
Store takes a context, an Adapter, the name of a database table, a
table, the names of its feature columns and the name of its label and
ensures the database table exists with those columns, then inserts the
rows of the table into it within a transaction. It returns an error if
any statement fails, in which case no row is inserted.
*/
func Store(ctx context.Context, a Adapter, table string, t *dataset.Table, featureNames []string, label string) error {
	if len(featureNames) != t.FeatureCount() {
		return fmt.Errorf("storing table %s: %d feature names for %d features", table, len(featureNames), t.FeatureCount())
	}
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return fmt.Errorf("storing table %s: %v", table, err)
	}
	columns := make([]string, 0, len(featureNames)+1)
	for _, name := range append(append([]string(nil), featureNames...), label) {
		qc, err := a.QuoteIdentifier(name)
		if err != nil {
			return fmt.Errorf("storing table %s: %v", table, err)
		}
		columns = append(columns, qc)
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(", qt))
	for i, c := range columns {
		if i > 0 {
			createStmtBuf.WriteString(", ")
		}
		createStmtBuf.WriteString(fmt.Sprintf("%s TEXT NOT NULL", c))
	}
	createStmtBuf.WriteString(")")
	_, err = a.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %v", table, err)
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = a.Placeholder(i + 1)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", qt, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storing table %s: beginning transaction: %v", table, err)
	}
	insertStmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert command for table %s: %v", table, err)
	}
	defer insertStmt.Close()
	for i := 0; i < t.Count(); i++ {
		r := t.Row(i)
		args := make([]interface{}, len(r))
		for j, v := range r {
			args[j] = v
		}
		_, err = insertStmt.ExecContext(ctx, args...)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting row %d into table %s: %v", i+1, table, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("storing table %s: committing: %v", table, err)
	}
	return nil
}
