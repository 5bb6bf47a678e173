package sapling

import (
	"fmt"
)

// GrowError represents an error related with growing trees
type GrowError string

const (
	// ErrEmptyDistribution is returned when computing the impurity of
	// a distribution without rows.
	ErrEmptyDistribution = GrowError("impurity of an empty distribution")
	// ErrDistributionMismatch is returned when the row count given to
	// compute an impurity does not match the counts of its distribution.
	ErrDistributionMismatch = GrowError("row count does not match the label distribution")
	// ErrGainLengthMismatch is returned when computing a gain with
	// a different number of fractions and impurities.
	ErrGainLengthMismatch = GrowError("fractions and impurities have different lengths")
	// ErrFeatureCountMismatch is returned when the feature names given
	// to grow a tree do not match the feature columns of its table.
	ErrFeatureCountMismatch = GrowError("feature names do not match table feature columns")
	// ErrEmptySplit is returned when a tree is to be grown from a
	// table without rows.
	ErrEmptySplit = GrowError("cannot grow a tree from an empty table")
)

func (ge GrowError) Error() string {
	return string(ge)
}

/*
Gini takes a row count and a map with the number of rows bearing
each label and returns the Gini impurity of the distribution:
1 - Σ (count/n)². The result is 0 for a pure distribution and
approaches 1 as rows spread evenly over more labels. An error is
returned if n is 0 or does not equal the sum of the counts.
*/
func Gini(n int, labelCounts map[string]int) (float64, error) {
	if n <= 0 {
		return 0.0, ErrEmptyDistribution
	}
	var sum int
	result := 1.0
	for _, c := range labelCounts {
		sum += c
		p := float64(c) / float64(n)
		result -= p * p
	}
	if sum != n {
		return 0.0, fmt.Errorf("%d rows for %d counted labels: %w", n, sum, ErrDistributionMismatch)
	}
	return result, nil
}

/*
Gain takes the impurity of a table and, for each part of a partition
of it, the fraction of rows that fell into the part and the part's
impurity, and returns the information gain of the partition:
parentImpurity - Σ fractions[i] * impurities[i].
*/
func Gain(parentImpurity float64, fractions, impurities []float64) (float64, error) {
	if len(fractions) != len(impurities) {
		return 0.0, fmt.Errorf("%d fractions and %d impurities: %w", len(fractions), len(impurities), ErrGainLengthMismatch)
	}
	result := parentImpurity
	for i, f := range fractions {
		result -= f * impurities[i]
	}
	return result, nil
}
