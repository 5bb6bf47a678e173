package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/sapling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against the redis server at SAPLING_TEST_REDIS_ADDR
// and are skipped when the variable is not set.
func testStore(t *testing.T) tree.Store {
	addr := os.Getenv("SAPLING_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SAPLING_TEST_REDIS_ADDR not set")
	}
	s, err := Dial(addr, "", 0, "sapling-test")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	root := tree.NewInternal("weather")
	root.Children["sunny"] = tree.Leaf{Label: "no"}
	root.Children["rain"] = tree.Leaf{Label: "yes"}

	require.NoError(t, s.Save(ctx, "weather", root))
	n, err := s.Load(ctx, "weather")
	require.NoError(t, err)
	assert.Equal(t, root, n)

	require.NoError(t, s.Delete(ctx, "weather"))
	_, err = s.Load(ctx, "weather")
	assert.ErrorIs(t, err, tree.ErrTreeNotFound)
}

func TestKeyFor(t *testing.T) {
	rs := &redisStore{prefix: "trees"}
	assert.Equal(t, "trees:weather", rs.keyFor("weather"))
}
