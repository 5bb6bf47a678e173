package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/dataset/csv"
	"github.com/pbanos/sapling/dataset/mongodataset"
	"github.com/pbanos/sapling/dataset/sqldataset"
	"github.com/pbanos/sapling/dataset/sqldataset/pgadapter"
	"github.com/pbanos/sapling/dataset/sqldataset/sqlite3adapter"
	"github.com/spf13/pflag"
	mgo "gopkg.in/mgo.v2"
)

const defaultSourceName = "samples"

/*
tableInputConfig holds the flags that locate the table a command reads:
a CSV file (or STDIN), a SQLite3 file, a PostgreSQL database or a
MongoDB database.
*/
type tableInputConfig struct {
	*rootCmdConfig
	dataInput  string
	separator  string
	table      string
	collection string
	fields     []string
	maxDBConns int
}

func (tic *tableInputConfig) addFlags(fs *pflag.FlagSet, purpose string) {
	fs.StringVarP(&(tic.dataInput), "input", "i", "", fmt.Sprintf("path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with data to %s (defaults to STDIN, interpreted as CSV)", purpose))
	fs.StringVar(&(tic.separator), "separator", string(csv.DefaultSeparator), "field separator of CSV input")
	fs.StringVar(&(tic.table), "table", defaultSourceName, "name of the table holding the data on SQLite3 and PostgreSQL inputs")
	fs.StringVar(&(tic.collection), "collection", defaultSourceName, "name of the collection holding the data on MongoDB inputs")
	fs.StringSliceVar(&(tic.fields), "fields", nil, "comma-separated fields to read on MongoDB inputs, the label field last (required for MongoDB inputs)")
	fs.IntVar(&(tic.maxDBConns), "max-db-conns", 0, "limit to PostgreSQL connections opened at a time (defaults to 0: no limit)")
}

func (tic *tableInputConfig) Validate() error {
	if utf8.RuneCountInString(tic.separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", tic.separator)
	}
	if tic.isMongoDB() && len(tic.fields) < 1 {
		return fmt.Errorf("required fields flag was not set for MongoDB input")
	}
	return nil
}

func (tic *tableInputConfig) isMongoDB() bool {
	return strings.HasPrefix(tic.dataInput, "mongodb://")
}

/*
readTable loads the table from the configured input and returns it along
the names of its feature columns.
*/
func (tic *tableInputConfig) readTable(ctx context.Context) (*dataset.Table, []string, error) {
	switch {
	case strings.HasPrefix(tic.dataInput, "postgresql://"):
		tic.Logf("Creating PostgreSQL adapter for url %s...", tic.dataInput)
		adapter, err := pgadapter.New(tic.dataInput, tic.maxDBConns)
		if err != nil {
			return nil, nil, err
		}
		defer adapter.Close()
		tic.Logf("Loading table %s over PostgreSQL adapter...", tic.table)
		return sqldataset.Load(ctx, adapter, tic.table)
	case strings.HasSuffix(tic.dataInput, ".db"):
		tic.Logf("Creating SQLite3 adapter for file %s...", tic.dataInput)
		adapter, err := sqlite3adapter.New(tic.dataInput)
		if err != nil {
			return nil, nil, err
		}
		defer adapter.Close()
		tic.Logf("Loading table %s over SQLite3 adapter...", tic.table)
		return sqldataset.Load(ctx, adapter, tic.table)
	case tic.isMongoDB():
		tic.Logf("Connecting to MongoDB at %s...", tic.dataInput)
		session, err := mgo.Dial(tic.dataInput)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MongoDB at %s: %w", tic.dataInput, err)
		}
		defer session.Close()
		tic.Logf("Loading fields %v from collection %s...", tic.fields, tic.collection)
		return mongodataset.Load(ctx, session, tic.collection, tic.fields)
	}
	if tic.dataInput == "" {
		tic.Logf("Reading CSV table from STDIN...")
	} else {
		tic.Logf("Reading CSV table from %s...", tic.dataInput)
	}
	sep, _ := utf8.DecodeRuneInString(tic.separator)
	return csv.ReadTableFromFilePath(tic.dataInput, sep)
}
