package sqldataset_test

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/dataset/sqldataset"
	"github.com/pbanos/sapling/dataset/sqldataset/pgadapter"
	"github.com/pbanos/sapling/dataset/sqldataset/sqlite3adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherTable(t *testing.T) *dataset.Table {
	tbl, err := dataset.New([]dataset.Row{
		{"sunny", "hot", "no"},
		{"sunny", "cool", "yes"},
		{"rain", "cool", "yes"},
		{"rain", "hot", "no"},
	})
	require.NoError(t, err)
	return tbl
}

func sqlite3Adapter(t *testing.T) sqldataset.Adapter {
	a, err := sqlite3adapter.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func testStoreAndLoad(t *testing.T, a sqldataset.Adapter, table string) {
	ctx := context.Background()
	require.NoError(t, sqldataset.Store(ctx, a, table, weatherTable(t), []string{"weather", "temp"}, "play"))

	tbl, names, err := sqldataset.Load(ctx, a, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"weather", "temp"}, names)
	require.Equal(t, 4, tbl.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, weatherTable(t).Row(i), tbl.Row(i))
	}
}

func TestSQLite3StoreAndLoad(t *testing.T) {
	testStoreAndLoad(t, sqlite3Adapter(t), "weather")
}

func TestPostgreSQLStoreAndLoad(t *testing.T) {
	url := os.Getenv("SAPLING_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("SAPLING_TEST_POSTGRES_URL not set")
	}
	a, err := pgadapter.New(url, 2)
	require.NoError(t, err)
	defer a.Close()
	_, err = a.DB().Exec(`DROP TABLE IF EXISTS "sapling_weather"`)
	require.NoError(t, err)
	testStoreAndLoad(t, a, "sapling_weather")
}

func TestLoadEmptyTable(t *testing.T) {
	a := sqlite3Adapter(t)
	_, err := a.DB().Exec(`CREATE TABLE samples ("a" TEXT, "b" TEXT, "label" TEXT)`)
	require.NoError(t, err)
	tbl, names, err := sqldataset.Load(context.Background(), a, "samples")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, 0, tbl.Count())
	assert.Equal(t, 2, tbl.FeatureCount())
}

func TestLoadConvertsValuesToText(t *testing.T) {
	a := sqlite3Adapter(t)
	_, err := a.DB().Exec(`CREATE TABLE samples ("size" INTEGER, "label" TEXT)`)
	require.NoError(t, err)
	_, err = a.DB().Exec(`INSERT INTO samples VALUES (3, 'big'), (1, 'small')`)
	require.NoError(t, err)
	tbl, _, err := sqldataset.Load(context.Background(), a, "samples")
	require.NoError(t, err)
	assert.Equal(t, dataset.Row{"3", "big"}, tbl.Row(0))
	assert.Equal(t, dataset.Row{"1", "small"}, tbl.Row(1))
}

func TestLoadMissingValue(t *testing.T) {
	a := sqlite3Adapter(t)
	_, err := a.DB().Exec(`CREATE TABLE samples ("a" TEXT, "label" TEXT)`)
	require.NoError(t, err)
	_, err = a.DB().Exec(`INSERT INTO samples VALUES (NULL, 'yes')`)
	require.NoError(t, err)
	_, _, err = sqldataset.Load(context.Background(), a, "samples")
	assert.ErrorIs(t, err, sqldataset.ErrMissingValue)
}

func TestLoadUnknownTable(t *testing.T) {
	_, _, err := sqldataset.Load(context.Background(), sqlite3Adapter(t), "missing")
	assert.Error(t, err)
}

func TestStoreRejectsMismatchedNames(t *testing.T) {
	err := sqldataset.Store(context.Background(), sqlite3Adapter(t), "weather", weatherTable(t), []string{"weather"}, "play")
	assert.Error(t, err)
}

func TestQuoteIdentifier(t *testing.T) {
	q, err := sqldataset.QuoteIdentifier("weather")
	require.NoError(t, err)
	assert.Equal(t, `"weather"`, q)
	_, err = sqldataset.QuoteIdentifier(`we"ather`)
	assert.Error(t, err)
	_, err = sqldataset.QuoteIdentifier("")
	assert.Error(t, err)
}
