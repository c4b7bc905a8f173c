package index

import (
	"log/slog"

	"github.com/google/btree"
)

// btreeDegree controls node fan-out of the backing tree
const btreeDegree = 32

// entry is one distinct value of the indexed key with its occurrence count
type entry struct {
	value string
	count int
}

// lessEntry orders entries by ascending byte-wise lexicographic comparison
// of the value's original text. This ordering is externally observable
// through Ascend and must not change.
func lessEntry(a, b entry) bool {
	return a.value < b.value
}

// Frequency is a sorted index mapping each distinct value of one column or
// attribute key to the number of records bearing it. It is built once and
// read-only afterwards; traversal is safe from multiple goroutines.
type Frequency struct {
	key   string
	tree  *btree.BTreeG[entry]
	total int // total occurrences accumulated across all values
}

// Build constructs a frequency index over the given values in a single pass
func Build(key string, values []string) *Frequency {
	f := &Frequency{
		key:  key,
		tree: btree.NewG(btreeDegree, lessEntry),
	}

	for _, v := range values {
		count := 1
		if cur, ok := f.tree.Get(entry{value: v}); ok {
			count = cur.count + 1
		}
		f.tree.ReplaceOrInsert(entry{value: v, count: count})
		f.total++
	}

	slog.Debug("frequency index built",
		slog.String("key", key),
		slog.Int("distinct_values", f.tree.Len()),
		slog.Int("total_values", f.total))

	return f
}

// Key returns the column or attribute key this index was built for
func (f *Frequency) Key() string {
	return f.key
}

// Len returns the number of distinct values in the index
func (f *Frequency) Len() int {
	return f.tree.Len()
}

// Total returns the total number of occurrences across all distinct values
func (f *Frequency) Total() int {
	return f.total
}

// Count returns the occurrence count of a single value and whether it exists
func (f *Frequency) Count(value string) (int, bool) {
	e, ok := f.tree.Get(entry{value: value})
	if !ok {
		return 0, false
	}
	return e.count, true
}

// Ascend visits every distinct entry in ascending value order, calling
// visit(value, count) once per entry. Traversal stops early if visit
// returns false.
func (f *Frequency) Ascend(visit func(value string, count int) bool) {
	f.tree.Ascend(func(e entry) bool {
		return visit(e.value, e.count)
	})
}
