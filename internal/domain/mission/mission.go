package mission

import (
	"time"

	"github.com/google/uuid"

	"github.com/starforge/starforge-go/internal/domain/shared"
)

// MissionStatus represents the lifecycle state of a fleet mission
type MissionStatus string

const (
	// MissionStatusUnderway - fleet dispatched, arrival pending
	MissionStatusUnderway MissionStatus = "UNDERWAY"

	// MissionStatusArrived - arrival time passed, reward credited
	MissionStatusArrived MissionStatus = "ARRIVED"

	// MissionStatusRecalled - recalled before arrival, no reward
	MissionStatusRecalled MissionStatus = "RECALLED"
)

// IsTerminal returns true for statuses that admit no further transition
func (s MissionStatus) IsTerminal() bool {
	return s == MissionStatusArrived || s == MissionStatusRecalled
}

// Mission is a dispatched fleet operation that resolves when its arrival
// time passes. Like build orders, a mission performs no active work while
// underway; progress is purely a timestamp comparison.
type Mission struct {
	id         string
	name       string
	status     MissionStatus
	departedAt time.Time
	arrivesAt  time.Time
	reward     map[shared.Resource]int
}

// NewMission dispatches a mission departing now and arriving after duration
func NewMission(name string, now time.Time, duration time.Duration, reward map[shared.Resource]int) (*Mission, error) {
	if duration <= 0 {
		return nil, &ErrInvalidMissionDuration{Duration: duration}
	}
	return &Mission{
		id:         uuid.New().String(),
		name:       name,
		status:     MissionStatusUnderway,
		departedAt: now,
		arrivesAt:  now.Add(duration),
		reward:     shared.CopyCosts(reward),
	}, nil
}

// ReconstructMission restores a mission from persistence
func ReconstructMission(
	id string,
	name string,
	status MissionStatus,
	departedAt, arrivesAt time.Time,
	reward map[shared.Resource]int,
) *Mission {
	return &Mission{
		id:         id,
		name:       name,
		status:     status,
		departedAt: departedAt,
		arrivesAt:  arrivesAt,
		reward:     shared.CopyCosts(reward),
	}
}

// Arrive transitions UNDERWAY -> ARRIVED
func (m *Mission) Arrive() error {
	if m.status != MissionStatusUnderway {
		return &ErrInvalidMissionTransition{
			MissionID: m.id,
			From:      m.status,
			To:        MissionStatusArrived,
		}
	}
	m.status = MissionStatusArrived
	return nil
}

// Recall transitions UNDERWAY -> RECALLED, forfeiting the reward
func (m *Mission) Recall() error {
	if m.status != MissionStatusUnderway {
		return &ErrMissionNotRecallable{MissionID: m.id, Status: m.status}
	}
	m.status = MissionStatusRecalled
	return nil
}

// IsDue reports whether an underway mission has reached its arrival time
func (m *Mission) IsDue(now time.Time) bool {
	return m.status == MissionStatusUnderway && !now.Before(m.arrivesAt)
}

// Getters

func (m *Mission) ID() string {
	return m.id
}

func (m *Mission) Name() string {
	return m.name
}

func (m *Mission) Status() MissionStatus {
	return m.status
}

func (m *Mission) DepartedAt() time.Time {
	return m.departedAt
}

func (m *Mission) ArrivesAt() time.Time {
	return m.arrivesAt
}

// Reward returns a copy of the mission's reward map
func (m *Mission) Reward() map[shared.Resource]int {
	return shared.CopyCosts(m.reward)
}
