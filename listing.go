// Package gtfkit lists distinct values of annotation dataset columns and
// attributes, with occurrence counts, as ordered tables of text rows.
//
// Count-bearing listings traverse a sorted frequency index in ascending
// byte-wise lexicographic order of the value text, so row order is
// deterministic for an unchanged dataset. Each call builds its own result
// table; concurrent calls on read-only datasets are safe.
package gtfkit

import (
	"strconv"
	"time"

	"gtfkit/annotation"
	"gtfkit/internal/index"
)

// ListFeatureValues lists the distinct values of the feature column with
// their occurrence counts, one [count, value] row per distinct value
func ListFeatureValues(ds *annotation.Dataset) (*ResultTable, error) {
	return ListColumnValues(ds, annotation.ColumnFeature)
}

// ListSeqidValues lists the distinct values of the seqid column with their
// occurrence counts, one [count, value] row per distinct value
func ListSeqidValues(ds *annotation.Dataset) (*ResultTable, error) {
	return ListColumnValues(ds, annotation.ColumnSeqid)
}

// ListColumnValues lists the distinct values of any fixed column with their
// occurrence counts. Returns UnknownKeyError if column is not one of the
// eight fixed columns.
func ListColumnValues(ds *annotation.Dataset, column annotation.Column) (*ResultTable, error) {
	if !annotation.IsColumn(string(column)) {
		return nil, annotation.NewUnknownKey(ds.Name, string(column))
	}
	return listIndexedValues(ds, string(column))
}

// ListAttributeValues lists the distinct values of the named attribute with
// their occurrence counts. Records lacking the attribute contribute nothing.
// Returns UnknownKeyError if no record carries the attribute.
func ListAttributeValues(ds *annotation.Dataset, attribute string) (*ResultTable, error) {
	return listIndexedValues(ds, attribute)
}

// ListAttributeNames lists the distinct attribute names present in the
// dataset, one single-field [name] row per attribute, in the order the
// names were first seen. An empty dataset yields an empty table.
func ListAttributeNames(ds *annotation.Dataset) (*ResultTable, error) {
	ds.Notify(annotation.Event{
		Type:      annotation.EventListStart,
		DatasetID: ds.ID,
		Timestamp: time.Now(),
	})

	table, err := materializeFromNames(ds.AttributeNames())
	if err != nil {
		return nil, err
	}

	ds.Notify(annotation.Event{
		Type:      annotation.EventListEnd,
		DatasetID: ds.ID,
		Timestamp: time.Now(),
		Data:      table.Len(),
	})

	return table, nil
}

// listIndexedValues is the one parameterized operation behind all
// count-bearing entry points: index the dataset on key, then flatten the
// index into a fresh table
func listIndexedValues(ds *annotation.Dataset, key string) (*ResultTable, error) {
	ds.Notify(annotation.Event{
		Type:      annotation.EventListStart,
		DatasetID: ds.ID,
		Key:       key,
		Timestamp: time.Now(),
	})

	idx, err := ds.IndexFor(key)
	if err != nil {
		return nil, err
	}

	table, err := materializeFromIndex(idx)
	if err != nil {
		return nil, err
	}

	ds.Notify(annotation.Event{
		Type:      annotation.EventListEnd,
		DatasetID: ds.ID,
		Key:       key,
		Timestamp: time.Now(),
		Data:      table.Len(),
	})

	return table, nil
}

// materializeFromIndex flattens a frequency index into a table of
// [count, value] rows via a complete in-order traversal. The table is local
// to this call; an empty index yields a valid empty table.
func materializeFromIndex(idx *index.Frequency) (*ResultTable, error) {
	table := NewResultTable(2)

	var appendErr error
	idx.Ascend(func(value string, count int) bool {
		if err := table.AppendRow(strconv.Itoa(count), value); err != nil {
			appendErr = err
			return false
		}
		return true
	})
	if appendErr != nil {
		// never hand out a partially built table
		return nil, appendErr
	}

	return table, nil
}

// materializeFromNames builds a table of single-field [name] rows,
// preserving input order
func materializeFromNames(names []string) (*ResultTable, error) {
	table := NewResultTable(1)
	for _, name := range names {
		if err := table.AppendRow(name); err != nil {
			return nil, err
		}
	}
	return table, nil
}
