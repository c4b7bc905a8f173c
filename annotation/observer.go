package annotation

import "time"

// EventType represents different lifecycle phases of dataset operations
type EventType string

const (
	EventIndexBuildStart EventType = "index_build_start"
	EventIndexBuildEnd   EventType = "index_build_end"
	EventListStart       EventType = "list_start"
	EventListEnd         EventType = "list_end"
)

// Event represents a lifecycle event of an index build or a listing call
type Event struct {
	Type      EventType   // Type of event
	DatasetID string      // Dataset identifier for tracing
	Key       string      // Column or attribute key involved (empty for name listings)
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., distinct-value count, row count)
}

// Observer interface for event subscribers
// Observers receive events at major operation phases
type Observer interface {
	OnEvent(event Event)
}
