package annotation

import "fmt"

// UnknownKeyError signals that a requested key is neither a fixed column
// name nor an attribute present in the dataset, so no frequency index can
// be built for it. Distinct from an empty index, which is a valid result.
type UnknownKeyError struct {
	Dataset string // dataset name (may be empty)
	Key     string // the key that could not be indexed
}

func (e *UnknownKeyError) Error() string {
	if e.Dataset == "" {
		return fmt.Sprintf("unknown key %q: not a column or attribute", e.Key)
	}
	return fmt.Sprintf("unknown key %q in dataset %s: not a column or attribute", e.Key, e.Dataset)
}

// NewUnknownKey creates an UnknownKeyError for the given dataset and key
func NewUnknownKey(dataset, key string) *UnknownKeyError {
	return &UnknownKeyError{
		Dataset: dataset,
		Key:     key,
	}
}
