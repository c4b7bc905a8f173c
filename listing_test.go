package gtfkit_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtfkit"
	"gtfkit/annotation"
	"gtfkit/internal/testutil"
)

func TestListFeatureValues_CountsAndOrder(t *testing.T) {
	ds := testutil.DatasetWithFeatures("exon", "exon", "gene", "exon")

	table, err := gtfkit.ListFeatureValues(ds)
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.Arity())
	// ascending byte order: "exon" < "gene"
	assert.Equal(t, [][]string{{"3", "exon"}, {"1", "gene"}}, table.Rows())
}

func TestListFeatureValues_SampleDataset(t *testing.T) {
	ds := testutil.SampleDataset()

	table, err := gtfkit.ListFeatureValues(ds)
	require.NoError(t, err)

	// "CDS" < "exon" < "gene" byte-wise
	assert.Equal(t, [][]string{{"2", "CDS"}, {"3", "exon"}, {"2", "gene"}}, table.Rows())
	assert.Equal(t, ds.Len(), sumCounts(t, table))
}

func TestListSeqidValues(t *testing.T) {
	ds := testutil.SampleDataset()

	table, err := gtfkit.ListSeqidValues(ds)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"4", "chr1"}, {"3", "chr2"}}, table.Rows())
	assert.Equal(t, ds.Len(), sumCounts(t, table))
}

func TestListColumnValues(t *testing.T) {
	ds := testutil.SampleDataset()

	table, err := gtfkit.ListColumnValues(ds, annotation.ColumnStrand)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"4", "+"}, {"3", "-"}}, table.Rows())
}

func TestListColumnValues_UnknownColumn(t *testing.T) {
	ds := testutil.SampleDataset()

	_, err := gtfkit.ListColumnValues(ds, annotation.Column("chromosome"))
	require.Error(t, err)

	var unknownKey *annotation.UnknownKeyError
	require.True(t, errors.As(err, &unknownKey))
	assert.Equal(t, "chromosome", unknownKey.Key)
}

func TestListAttributeNames(t *testing.T) {
	ds := testutil.SampleDataset()

	table, err := gtfkit.ListAttributeNames(ds)
	require.NoError(t, err)

	assert.Equal(t, 1, table.Arity())
	// first-seen order across records, one row per distinct name
	assert.Equal(t, [][]string{{"gene_id"}, {"gene_biotype"}, {"transcript_id"}}, table.Rows())
}

func TestListAttributeValues(t *testing.T) {
	ds := testutil.SampleDataset()

	table, err := gtfkit.ListAttributeValues(ds, "transcript_id")
	require.NoError(t, err)

	// only records carrying the attribute count
	assert.Equal(t, [][]string{{"3", "g1.t1"}, {"2", "g2.t1"}}, table.Rows())
}

func TestListAttributeValues_UnknownAttribute(t *testing.T) {
	ds := testutil.SampleDataset()

	table, err := gtfkit.ListAttributeValues(ds, "no_such_attribute")
	require.Error(t, err)
	assert.Nil(t, table, "no table on error")

	var unknownKey *annotation.UnknownKeyError
	require.True(t, errors.As(err, &unknownKey))
}

func TestListings_EmptyDataset(t *testing.T) {
	ds := annotation.NewDataset("empty")

	features, err := gtfkit.ListFeatureValues(ds)
	require.NoError(t, err)
	assert.Equal(t, 0, features.Len())

	seqids, err := gtfkit.ListSeqidValues(ds)
	require.NoError(t, err)
	assert.Equal(t, 0, seqids.Len())

	names, err := gtfkit.ListAttributeNames(ds)
	require.NoError(t, err)
	assert.Equal(t, 0, names.Len())
}

func TestListFeatureValues_Deterministic(t *testing.T) {
	ds := testutil.SampleDataset()

	first, err := gtfkit.ListFeatureValues(ds)
	require.NoError(t, err)
	second, err := gtfkit.ListFeatureValues(ds)
	require.NoError(t, err)

	assert.Equal(t, first.Rows(), second.Rows())
	assert.NotSame(t, first, second, "each call owns a fresh table")
}

// Two overlapping calls must not leak rows into each other's tables.
func TestListings_ConcurrentCalls(t *testing.T) {
	dsA := testutil.DatasetWithFeatures("exon", "exon", "gene")
	dsB := testutil.DatasetWithFeatures("CDS", "CDS", "CDS", "start_codon")

	wantA := [][]string{{"2", "exon"}, {"1", "gene"}}
	wantB := [][]string{{"3", "CDS"}, {"1", "start_codon"}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			table, err := gtfkit.ListFeatureValues(dsA)
			if assert.NoError(t, err) {
				assert.Equal(t, wantA, table.Rows())
			}
		}()
		go func() {
			defer wg.Done()
			table, err := gtfkit.ListFeatureValues(dsB)
			if assert.NoError(t, err) {
				assert.Equal(t, wantB, table.Rows())
			}
		}()
	}
	wg.Wait()
}

func TestListings_ConcurrentKeysOnOneDataset(t *testing.T) {
	ds := testutil.SampleDataset()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			table, err := gtfkit.ListFeatureValues(ds)
			if assert.NoError(t, err) {
				assert.Equal(t, 3, table.Len())
			}
		}()
		go func() {
			defer wg.Done()
			table, err := gtfkit.ListSeqidValues(ds)
			if assert.NoError(t, err) {
				assert.Equal(t, 2, table.Len())
			}
		}()
		go func() {
			defer wg.Done()
			table, err := gtfkit.ListAttributeValues(ds, "gene_id")
			if assert.NoError(t, err) {
				assert.Equal(t, 2, table.Len())
			}
		}()
	}
	wg.Wait()
}

// sumCounts parses and sums the count column of a two-field table
func sumCounts(t *testing.T, table *gtfkit.ResultTable) int {
	t.Helper()
	require.Equal(t, 2, table.Arity())

	total := 0
	for _, row := range table.Rows() {
		require.Len(t, row, 2)
		n, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1, "counts are at least 1")
		total += n
	}
	return total
}
