package dataset

/*
Split takes the index of a feature column and a value and returns a new
table with the rows whose value for that column equals the given one,
with the column removed. Rows keep their relative order. If no row
matches, the result is an empty table with one feature less. An error is
returned if the index is not a feature column.
*/
func (t *Table) Split(featureIndex int, value string) (*Table, error) {
	if err := t.checkFeatureIndex(featureIndex); err != nil {
		return nil, err
	}
	var rows []Row
	for _, r := range t.rows {
		if r[featureIndex] != value {
			continue
		}
		reduced := make(Row, 0, t.width-1)
		reduced = append(reduced, r[:featureIndex]...)
		reduced = append(reduced, r[featureIndex+1:]...)
		rows = append(rows, reduced)
	}
	return &Table{rows: rows, width: t.width - 1}, nil
}

/*
Partition takes the index of a feature column and returns the distinct
values of the column, in order of first occurrence, along with the
subtable Split returns for each of them.
*/
func (t *Table) Partition(featureIndex int) ([]string, []*Table, error) {
	values, err := t.FeatureValues(featureIndex)
	if err != nil {
		return nil, nil, err
	}
	subsets := make([]*Table, 0, len(values))
	for _, v := range values {
		s, err := t.Split(featureIndex, v)
		if err != nil {
			return nil, nil, err
		}
		subsets = append(subsets, s)
	}
	return values, subsets, nil
}
