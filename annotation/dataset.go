package annotation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gtfkit/internal/index"
)

// Dataset is an ordered, in-memory collection of annotation records.
// It owns the attribute-name enumeration (first-seen order) and a cache of
// frequency indexes, one per column or attribute key. Indexes are built
// lazily on first request and reused until the dataset changes.
type Dataset struct {
	mu        sync.RWMutex
	ID        string // Unique dataset identifier (UUID)
	Name      string
	records   []Record
	attrNames []string // distinct attribute names in first-seen order
	attrSeen  map[string]struct{}
	indexes   map[string]*index.Frequency
	observers []Observer
}

// NewDataset creates an empty dataset with a unique ID
func NewDataset(name string) *Dataset {
	return &Dataset{
		ID:       uuid.New().String(),
		Name:     name,
		attrSeen: make(map[string]struct{}),
		indexes:  make(map[string]*index.Frequency),
	}
}

// Append adds a record to the dataset.
// The record is copied to prevent mutation of the caller's data. Any cached
// indexes are discarded since their counts are stale after the append.
func (d *Dataset) Append(r Record) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.records = append(d.records, r.clone())

	for _, name := range r.AttributeNames() {
		if _, seen := d.attrSeen[name]; !seen {
			d.attrSeen[name] = struct{}{}
			d.attrNames = append(d.attrNames, name)
		}
	}

	if len(d.indexes) > 0 {
		d.indexes = make(map[string]*index.Frequency)
	}
}

// Len returns the number of records in the dataset
func (d *Dataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

// AttributeNames returns the distinct attribute names present in the
// dataset, in the order they were first seen across appended records
func (d *Dataset) AttributeNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, len(d.attrNames))
	copy(names, d.attrNames)
	return names
}

// HasAttribute reports whether any record carries the named attribute
func (d *Dataset) HasAttribute(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.attrSeen[name]
	return ok
}

// IndexFor returns the frequency index for the given column or attribute
// key, building it on first request. Concurrent first-time builds of the
// same key are serialized by the dataset lock; a returned index is read-only
// and safe to traverse from multiple goroutines.
// Returns UnknownKeyError if key is neither a fixed column nor an attribute
// present in the dataset.
func (d *Dataset) IndexFor(key string) (*index.Frequency, error) {
	d.mu.RLock()
	if idx, ok := d.indexes[key]; ok {
		d.mu.RUnlock()
		return idx, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Another goroutine may have built it between the two locks
	if idx, ok := d.indexes[key]; ok {
		return idx, nil
	}

	values, err := d.keyValuesLocked(key)
	if err != nil {
		return nil, err
	}

	d.notifyLocked(Event{
		Type:      EventIndexBuildStart,
		DatasetID: d.ID,
		Key:       key,
		Timestamp: time.Now(),
	})

	idx := index.Build(key, values)
	d.indexes[key] = idx

	d.notifyLocked(Event{
		Type:      EventIndexBuildEnd,
		DatasetID: d.ID,
		Key:       key,
		Timestamp: time.Now(),
		Data:      idx.Len(),
	})

	return idx, nil
}

// keyValuesLocked collects every occurrence of key across the records.
// For a fixed column that is one value per record; for an attribute, only
// records carrying the attribute contribute.
// Must be called while holding the write lock.
func (d *Dataset) keyValuesLocked(key string) ([]string, error) {
	if col, ok := fixedColumns[key]; ok {
		values := make([]string, 0, len(d.records))
		for i := range d.records {
			v, _ := d.records[i].ColumnValue(col)
			values = append(values, v)
		}
		return values, nil
	}

	if _, ok := d.attrSeen[key]; !ok {
		return nil, NewUnknownKey(d.Name, key)
	}

	var values []string
	for i := range d.records {
		if v, ok := d.records[i].Attribute(key); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

// Observe attaches an observer that receives dataset lifecycle events
func (d *Dataset) Observe(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, o)
}

// Notify delivers an event to all attached observers
func (d *Dataset) Notify(event Event) {
	d.mu.RLock()
	observers := d.observers
	d.mu.RUnlock()

	for _, o := range observers {
		o.OnEvent(event)
	}
}

// notifyLocked delivers an event while the dataset lock is already held
func (d *Dataset) notifyLocked(event Event) {
	for _, o := range d.observers {
		o.OnEvent(event)
	}
}
