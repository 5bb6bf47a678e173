package sapling

import (
	"github.com/pbanos/sapling/dataset"
)

/*
StopCriteria takes a table and decides whether a tree grown from it
must be a leaf. It returns the label for the leaf and true when:
 * the table has no feature columns left to split on: the label is the
   majority label of the table (see MajorityLabel),
 * all rows of the table share the same label: the label is that one.
Otherwise, or if the table has no rows, it returns "" and false.
*/
func StopCriteria(t *dataset.Table) (string, bool) {
	if t.Count() == 0 {
		return "", false
	}
	counts := t.LabelCounts()
	if t.FeatureCount() == 0 {
		return MajorityLabel(counts), true
	}
	if len(counts) == 1 {
		for label := range counts {
			return label, true
		}
	}
	return "", false
}

/*
MajorityLabel takes a map with label counts and returns the label with
the highest count. When several labels share the highest count, the
lexicographically smallest of them is returned. An empty map yields "".
*/
func MajorityLabel(labelCounts map[string]int) string {
	var result string
	best := -1
	for label, c := range labelCounts {
		if c > best || (c == best && label < result) {
			result = label
			best = c
		}
	}
	return result
}
