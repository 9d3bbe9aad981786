package countdown

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventTick      EventType = "tick"
	EventFinished  EventType = "finished"
	EventCancelled EventType = "cancelled"
)

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Running  bool
	At       time.Time
}
