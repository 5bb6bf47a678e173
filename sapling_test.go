package sapling

import (
	"fmt"
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, rows ...dataset.Row) *dataset.Table {
	tbl, err := dataset.New(rows)
	require.NoError(t, err)
	return tbl
}

func weatherTable(t *testing.T) *dataset.Table {
	return newTable(t,
		dataset.Row{"sunny", "hot", "no"},
		dataset.Row{"sunny", "cool", "yes"},
		dataset.Row{"rain", "cool", "yes"},
		dataset.Row{"rain", "hot", "no"},
	)
}

func TestGini(t *testing.T) {
	cases := []struct {
		n        int
		counts   map[string]int
		expected float64
	}{
		{1, map[string]int{"yes": 1}, 0.0},
		{5, map[string]int{"yes": 5}, 0.0},
		{4, map[string]int{"yes": 2, "no": 2}, 0.5},
		{4, map[string]int{"yes": 3, "no": 1}, 0.375},
		{3, map[string]int{"a": 1, "b": 1, "c": 1}, 2.0 / 3.0},
		{4, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, 0.75},
	}
	for _, c := range cases {
		g, err := Gini(c.n, c.counts)
		require.NoError(t, err)
		assert.InDelta(t, c.expected, g, 1e-9, "%v", c.counts)
		assert.True(t, g >= 0 && g < 1)
	}
}

func TestGiniGrowsWithUniformSpread(t *testing.T) {
	previous := -1.0
	for k := 1; k <= 6; k++ {
		counts := make(map[string]int)
		for i := 0; i < k; i++ {
			counts[fmt.Sprintf("label%d", i)] = 3
		}
		g, err := Gini(3*k, counts)
		require.NoError(t, err)
		assert.Greater(t, g, previous)
		previous = g
	}
}

func TestGiniErrors(t *testing.T) {
	_, err := Gini(0, map[string]int{})
	assert.ErrorIs(t, err, ErrEmptyDistribution)
	_, err = Gini(3, map[string]int{"yes": 2})
	assert.ErrorIs(t, err, ErrDistributionMismatch)
}

func TestGain(t *testing.T) {
	g, err := Gain(0.5, []float64{0.5, 0.5}, []float64{0.0, 0.0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, g, 1e-9)

	g, err = Gain(0.5, []float64{0.5, 0.5}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, g, 1e-9)

	g, err = Gain(0.3, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, g, 1e-9)

	_, err = Gain(0.5, []float64{1.0}, nil)
	assert.ErrorIs(t, err, ErrGainLengthMismatch)
}

func TestFeatureGains(t *testing.T) {
	gains, err := FeatureGains(weatherTable(t))
	require.NoError(t, err)
	require.Len(t, gains, 2)
	assert.InDelta(t, 0.0, gains[0], 1e-9)
	assert.InDelta(t, 0.5, gains[1], 1e-9)

	_, err = FeatureGains(dataset.Empty(2))
	assert.ErrorIs(t, err, ErrEmptyDistribution)
}

func TestGainsAreNonNegative(t *testing.T) {
	tables := []*dataset.Table{
		weatherTable(t),
		newTable(t,
			dataset.Row{"a", "x", "1"},
			dataset.Row{"a", "y", "2"},
			dataset.Row{"b", "x", "1"},
			dataset.Row{"b", "x", "3"},
			dataset.Row{"c", "y", "2"},
		),
		newTable(t, dataset.Row{"a", "yes"}, dataset.Row{"a", "no"}),
	}
	for _, tbl := range tables {
		gains, err := FeatureGains(tbl)
		require.NoError(t, err)
		for i, g := range gains {
			assert.GreaterOrEqual(t, g, -1e-12, "feature %d of %v", i, tbl)
		}
	}
}

func TestNewPartition(t *testing.T) {
	p, err := NewPartition(weatherTable(t), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.FeatureIndex)
	assert.Equal(t, []string{"hot", "cool"}, p.Values)
	require.Len(t, p.Subsets, 2)
	assert.Equal(t, map[string]int{"no": 2}, p.Subsets[0].LabelCounts())
	assert.Equal(t, map[string]int{"yes": 2}, p.Subsets[1].LabelCounts())
	assert.InDelta(t, 0.5, p.InformationGain(), 1e-9)

	_, err = NewPartition(weatherTable(t), 2)
	assert.ErrorIs(t, err, dataset.ErrFeatureIndexOutOfRange)
	_, err = NewPartition(dataset.Empty(1), 0)
	assert.ErrorIs(t, err, ErrEmptyDistribution)
}

func TestChooseBestFeature(t *testing.T) {
	best, err := ChooseBestFeature(weatherTable(t))
	require.NoError(t, err)
	assert.Equal(t, 1, best)

	for i := 0; i < 5; i++ {
		again, err := ChooseBestFeature(weatherTable(t))
		require.NoError(t, err)
		assert.Equal(t, best, again)
	}
}

func TestChooseBestFeatureTiesGoToFirstColumn(t *testing.T) {
	tbl := newTable(t,
		dataset.Row{"a", "x", "1"},
		dataset.Row{"a", "y", "0"},
		dataset.Row{"b", "x", "0"},
		dataset.Row{"b", "y", "1"},
	)
	best, err := ChooseBestFeature(tbl)
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	tbl = newTable(t,
		dataset.Row{"p", "a", "a", "yes"},
		dataset.Row{"p", "b", "b", "no"},
	)
	best, err = ChooseBestFeature(tbl)
	require.NoError(t, err)
	assert.Equal(t, 1, best)
}

func TestChooseBestFeatureWithoutFeatures(t *testing.T) {
	best, err := ChooseBestFeature(newTable(t, dataset.Row{"yes"}, dataset.Row{"no"}))
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestStopCriteria(t *testing.T) {
	label, ok := StopCriteria(newTable(t, dataset.Row{"yes"}, dataset.Row{"yes"}, dataset.Row{"no"}))
	assert.True(t, ok)
	assert.Equal(t, "yes", label)

	label, ok = StopCriteria(newTable(t, dataset.Row{"a", "b", "yes"}, dataset.Row{"c", "d", "yes"}))
	assert.True(t, ok)
	assert.Equal(t, "yes", label)

	label, ok = StopCriteria(weatherTable(t))
	assert.False(t, ok)
	assert.Equal(t, "", label)

	_, ok = StopCriteria(dataset.Empty(0))
	assert.False(t, ok)
}

func TestMajorityLabel(t *testing.T) {
	assert.Equal(t, "yes", MajorityLabel(map[string]int{"yes": 2, "no": 1}))
	assert.Equal(t, "no", MajorityLabel(map[string]int{"yes": 2, "no": 2}))
	assert.Equal(t, "b", MajorityLabel(map[string]int{"c": 3, "b": 3, "a": 1}))
	assert.Equal(t, "", MajorityLabel(map[string]int{}))

	label, ok := StopCriteria(newTable(t, dataset.Row{"yes"}, dataset.Row{"no"}))
	assert.True(t, ok)
	assert.Equal(t, "no", label)
}

func TestGrowWeather(t *testing.T) {
	n, err := Grow(weatherTable(t), []string{"weather", "temp"})
	require.NoError(t, err)
	expected := tree.NewInternal("temp")
	expected.Children["hot"] = tree.Leaf{Label: "no"}
	expected.Children["cool"] = tree.Leaf{Label: "yes"}
	assert.Equal(t, expected, n)
	assert.Equal(t, 1, tree.Depth(n))
}

func TestGrowSingleRow(t *testing.T) {
	n, err := Grow(newTable(t, dataset.Row{"a", "b", "yes"}), []string{"f1", "f2"})
	require.NoError(t, err)
	assert.Equal(t, tree.Leaf{Label: "yes"}, n)
}

func TestGrowWithoutFeatures(t *testing.T) {
	n, err := Grow(newTable(t, dataset.Row{"yes"}, dataset.Row{"yes"}, dataset.Row{"no"}), []string{})
	require.NoError(t, err)
	assert.Equal(t, tree.Leaf{Label: "yes"}, n)
}

func TestGrowUniformLabels(t *testing.T) {
	tbl := newTable(t,
		dataset.Row{"a", "x", "ok"},
		dataset.Row{"b", "y", "ok"},
		dataset.Row{"c", "z", "ok"},
	)
	n, err := Grow(tbl, []string{"f1", "f2"})
	require.NoError(t, err)
	assert.Equal(t, tree.Leaf{Label: "ok"}, n)
}

func TestGrowTwoLevels(t *testing.T) {
	tbl := newTable(t,
		dataset.Row{"a", "x", "1"},
		dataset.Row{"a", "y", "0"},
		dataset.Row{"b", "x", "0"},
		dataset.Row{"b", "y", "1"},
	)
	names := []string{"f1", "f2"}
	n, err := Grow(tbl, names)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, names)
	expected := map[string]interface{}{
		"f1": map[string]interface{}{
			"a": map[string]interface{}{"f2": map[string]interface{}{"x": "1", "y": "0"}},
			"b": map[string]interface{}{"f2": map[string]interface{}{"x": "0", "y": "1"}},
		},
	}
	assert.Equal(t, expected, tree.ToMapping(n))
	assert.Equal(t, 2, tree.Depth(n))

	accuracy, failed, err := tree.Test(n, tbl, names)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.InDelta(t, 1.0, accuracy, 1e-9)
}

func TestGrowExhaustsFeatures(t *testing.T) {
	tbl := newTable(t,
		dataset.Row{"a", "yes"},
		dataset.Row{"a", "no"},
		dataset.Row{"a", "no"},
		dataset.Row{"b", "yes"},
	)
	n, err := Grow(tbl, []string{"f1"})
	require.NoError(t, err)
	expected := tree.NewInternal("f1")
	expected.Children["a"] = tree.Leaf{Label: "no"}
	expected.Children["b"] = tree.Leaf{Label: "yes"}
	assert.Equal(t, expected, n)
}

func TestGrowErrors(t *testing.T) {
	_, err := Grow(weatherTable(t), []string{"weather"})
	assert.ErrorIs(t, err, ErrFeatureCountMismatch)

	_, err = Grow(dataset.Empty(2), []string{"weather", "temp"})
	assert.ErrorIs(t, err, ErrEmptySplit)
}

func TestGrowerTracer(t *testing.T) {
	var events []Event
	g := &Grower{Tracer: TracerFunc(func(e Event) {
		events = append(events, e)
	})}
	_, err := g.Grow(weatherTable(t), []string{"weather", "temp"})
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, GainsEvent, events[0].Kind)
	assert.Equal(t, []string{"weather", "temp"}, events[0].Features)
	assert.InDeltaSlice(t, []float64{0.0, 0.5}, events[0].Gains, 1e-9)

	assert.Equal(t, SplitEvent, events[1].Kind)
	assert.Equal(t, "temp", events[1].Feature)
	assert.Equal(t, 1, events[1].FeatureIndex)
	assert.Equal(t, 4, events[1].Rows)

	assert.Equal(t, LeafEvent, events[2].Kind)
	assert.Equal(t, "no", events[2].Label)
	assert.Equal(t, []string{"temp=hot"}, events[2].Path)
	assert.Equal(t, 1, events[2].Depth)
	assert.Equal(t, LeafEvent, events[3].Kind)
	assert.Equal(t, "yes", events[3].Label)
	assert.Equal(t, []string{"temp=cool"}, events[3].Path)
}

type lineLogger []string

func (l *lineLogger) Logf(format string, a ...interface{}) {
	*l = append(*l, fmt.Sprintf(format, a...))
}

func TestLogTracer(t *testing.T) {
	l := &lineLogger{}
	g := &Grower{Tracer: LogTracer(l)}
	_, err := g.Grow(weatherTable(t), []string{"weather", "temp"})
	require.NoError(t, err)
	require.Len(t, *l, 4)
	assert.Equal(t, "gains at [] for features [weather temp]: [0 0.5]", (*l)[0])
	assert.Equal(t, "splitting 4 rows at [] on feature temp (index 1)", (*l)[1])
	assert.Equal(t, `  leaf "no" at [temp=hot] with 2 rows`, (*l)[2])
	assert.Equal(t, "leaf", LeafEvent.String())
	assert.Equal(t, "EventKind(7)", EventKind(7).String())
}
