package mission

import (
	"fmt"
	"time"
)

// ErrMissionNotFound indicates an unknown mission ID
type ErrMissionNotFound struct {
	MissionID string
}

func (e *ErrMissionNotFound) Error() string {
	return fmt.Sprintf("mission not found: %s", e.MissionID)
}

// ErrMissionNotRecallable indicates a transition attempt on a terminal mission
type ErrMissionNotRecallable struct {
	MissionID string
	Status    MissionStatus
}

func (e *ErrMissionNotRecallable) Error() string {
	return fmt.Sprintf("mission %s cannot be recalled in status %s",
		e.MissionID, e.Status)
}

// ErrInvalidMissionTransition indicates a status transition that would move
// a mission backwards or out of a terminal state
type ErrInvalidMissionTransition struct {
	MissionID string
	From      MissionStatus
	To        MissionStatus
}

func (e *ErrInvalidMissionTransition) Error() string {
	return fmt.Sprintf("invalid mission transition for %s: %s -> %s",
		e.MissionID, e.From, e.To)
}

// ErrInvalidMissionDuration indicates a non-positive mission duration
type ErrInvalidMissionDuration struct {
	Duration time.Duration
}

func (e *ErrInvalidMissionDuration) Error() string {
	return fmt.Sprintf("invalid mission duration: %s", e.Duration)
}
