/*
Package mongodataset loads tables from MongoDB collections and
writes them.

Every document of a collection is a sample, with a field for each
feature and one for the label. The fields to read are given
explicitly, the label field last.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
ErrMissingValue is the error returned when a document does not
define one of the fields being loaded.
*/
const ErrMissingValue = dataset.DatasetError("missing value")

/*
Load takes a context, a MongoDB session, the name of a collection in
the session's default database and the fields to read, the label field
last, and returns a table with a row for every document in the
collection and the feature names, or an error. Field values are
converted to their default string representation.
*/
func Load(ctx context.Context, session *mgo.Session, collection string, fields []string) (*dataset.Table, []string, error) {
	if len(fields) == 0 {
		return nil, nil, dataset.ErrNoLabelColumn
	}
	if err := validateFields(fields); err != nil {
		return nil, nil, err
	}
	selector := bson.M{"_id": 0}
	for _, f := range fields {
		selector[f] = 1
	}
	iter := session.DB("").C(collection).Find(nil).Select(selector).Iter()
	defer iter.Close()
	var rows []dataset.Row
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		row := make(dataset.Row, 0, len(fields))
		for _, f := range fields {
			v, ok := doc[f]
			if !ok || v == nil {
				return nil, nil, fmt.Errorf("document %d of collection %s, field %s: %w", len(rows), collection, f, ErrMissingValue)
			}
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %w", collection, err)
	}
	featureNames := append([]string(nil), fields[:len(fields)-1]...)
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
Write takes a context, a MongoDB session, the name of a collection,
a table, its feature names and the name for the label field, and
inserts a document for every row of the table into the collection.
An index is ensured on every feature field.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, t *dataset.Table, featureNames []string, label string) error {
	if len(featureNames) != t.FeatureCount() {
		return fmt.Errorf("writing %d feature names for %d feature columns", len(featureNames), t.FeatureCount())
	}
	fields := append(append([]string(nil), featureNames...), label)
	if err := validateFields(fields); err != nil {
		return err
	}
	c := session.DB("").C(collection)
	for _, f := range featureNames {
		if err := ctx.Err(); err != nil {
			return err
		}
		index := mgo.Index{
			Key:        []string{f},
			Background: true,
			Sparse:     true,
		}
		if err := c.EnsureIndex(index); err != nil {
			return fmt.Errorf("ensuring index on %s: %w", f, err)
		}
	}
	docs := make([]interface{}, 0, t.Count())
	for i := 0; i < t.Count(); i++ {
		doc := make(bson.M, len(fields))
		for j, v := range t.Row(i) {
			doc[fields[j]] = v
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Insert(docs...)
}

func validateFields(fields []string) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f == "" {
			return fmt.Errorf("invalid empty field name")
		}
		if f == "_id" {
			return fmt.Errorf("invalid field name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(f, ".$") {
			return fmt.Errorf("invalid field name %q: contains reserved characters %q or %q", f, ".", "$")
		}
		if seen[f] {
			return fmt.Errorf("duplicated field name %q", f)
		}
		seen[f] = true
	}
	return nil
}
