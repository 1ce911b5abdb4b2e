package session

import "time"

// EventKind identifies a state change in the session
type EventKind string

const (
	EventOrderStarted      EventKind = "ORDER_STARTED"
	EventOrderCompleted    EventKind = "ORDER_COMPLETED"
	EventOrderCancelled    EventKind = "ORDER_CANCELLED"
	EventMissionDispatched EventKind = "MISSION_DISPATCHED"
	EventMissionArrived    EventKind = "MISSION_ARRIVED"
	EventMissionRecalled   EventKind = "MISSION_RECALLED"
	EventAdvanced          EventKind = "ADVANCED"
)

// Event notifies observers of a session state change. The session depends
// on no UI framework; a presentation layer subscribes with an Observer and
// renders from the read-side accessors.
type Event struct {
	Kind     EventKind
	EntityID string // order or mission ID, empty for ADVANCED
	At       time.Time
}

// Observer receives session events. Observers are invoked after the
// mutation completed and outside the session lock, so they may safely call
// back into the session.
type Observer func(Event)
