/*
Package csv reads tables from delimited text and writes them back.

The first record is the header: the names of the feature columns
followed by the name of the label column. Every other record is a row
of the table. Fields are stripped of surrounding whitespace.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/sapling/dataset"
)

// DefaultSeparator is the field separator used when none is given
const DefaultSeparator = ','

/*
ReadTable takes an io.Reader for a delimited text stream and the rune
separating its fields and returns the table of rows parsed from it along
with the names of its feature columns, or an error.

Every record must have as many fields as the header. A stream with a
header and no rows yields an empty table.
*/
func ReadTable(reader io.Reader, separator rune) (*dataset.Table, []string, error) {
	r := csv.NewReader(reader)
	r.Comma = separator
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %v", err)
	}
	header = trimFields(header)
	featureNames := header[:len(header)-1]
	rows := []dataset.Row{}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading body: line %d: %v", l, err)
		}
		rows = append(rows, dataset.Row(trimFields(record)))
	}
	if len(rows) == 0 {
		return dataset.Empty(len(featureNames)), featureNames, nil
	}
	t, err := dataset.New(rows)
	if err != nil {
		return nil, nil, err
	}
	return t, featureNames, nil
}

/*
ReadTableFromFilePath takes a filepath string and a separator, opens the
file to which the filepath points to and uses ReadTable to return the
table and feature names read from it or an error. If the filepath is ""
os.Stdin is read instead.
*/
func ReadTableFromFilePath(filepath string, separator rune) (*dataset.Table, []string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading table: %v", err)
		}
		defer f.Close()
	}
	t, names, err := ReadTable(f, separator)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return t, names, err
}

/*
WriteTable takes an io.Writer, a table, the names of its feature
columns, the name of its label column and a separator and dumps the
table onto the writer with a header. It returns an error if the names
do not match the table or something goes wrong when writing.
*/
func WriteTable(writer io.Writer, t *dataset.Table, featureNames []string, label string, separator rune) error {
	if len(featureNames) != t.FeatureCount() {
		return fmt.Errorf("writing CSV table: %d feature names for %d features", len(featureNames), t.FeatureCount())
	}
	w := csv.NewWriter(writer)
	w.Comma = separator
	header := append(append([]string(nil), featureNames...), label)
	err := w.Write(header)
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for i := 0; i < t.Count(); i++ {
		err = w.Write(t.Row(i))
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %v", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func trimFields(fields []string) []string {
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
