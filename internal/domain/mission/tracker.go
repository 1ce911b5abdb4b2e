package mission

import (
	"time"

	"github.com/starforge/starforge-go/internal/domain/ledger"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// SkipHandler is invoked when Advance encounters a mission it cannot
// resolve. The tick must never fail.
type SkipHandler func(m *Mission, err error)

// Tracker holds the dispatched missions for one player and advances their
// progress on the shared heartbeat, mirroring the build-order queue.
// Like the queue it carries no locking; the session serializes access.
type Tracker struct {
	ledger *ledger.Ledger

	missions []*Mission
	byID     map[string]*Mission

	onSkip SkipHandler
}

// NewTracker creates an empty mission tracker crediting rewards to led
func NewTracker(led *ledger.Ledger) *Tracker {
	return &Tracker{
		ledger: led,
		byID:   make(map[string]*Mission),
	}
}

// SetSkipHandler installs a diagnostic callback for missions skipped
// during Advance. A nil handler silences them.
func (t *Tracker) SetSkipHandler(handler SkipHandler) {
	t.onSkip = handler
}

// Dispatch launches a mission departing now
func (t *Tracker) Dispatch(name string, now time.Time, duration time.Duration, reward map[shared.Resource]int) (*Mission, error) {
	m, err := NewMission(name, now, duration, reward)
	if err != nil {
		return nil, err
	}
	t.missions = append(t.missions, m)
	t.byID[m.ID()] = m
	return m, nil
}

// Recall aborts an underway mission. The reward is forfeited.
func (t *Tracker) Recall(missionID string) (*Mission, error) {
	m, ok := t.byID[missionID]
	if !ok {
		return nil, &ErrMissionNotFound{MissionID: missionID}
	}
	if err := m.Recall(); err != nil {
		return nil, err
	}
	return m, nil
}

// Advance resolves every underway mission whose arrival time has passed,
// crediting its reward to the ledger. Resolutions are independent of each
// other and the call is idempotent: terminal missions are never touched
// again. Advance never fails; a mission whose reward cannot be credited
// (corrupt persisted data) is reported to the skip handler.
//
// Returns the missions that arrived in this call.
func (t *Tracker) Advance(now time.Time) []*Mission {
	var arrived []*Mission
	for _, m := range t.missions {
		if !m.IsDue(now) {
			continue
		}
		if err := m.Arrive(); err != nil {
			t.skip(m, err)
			continue
		}
		if err := t.ledger.CreditAll(m.Reward()); err != nil {
			t.skip(m, err)
			continue
		}
		arrived = append(arrived, m)
	}
	return arrived
}

// PruneTerminal removes arrived and recalled missions from the active set
func (t *Tracker) PruneTerminal() int {
	kept := t.missions[:0]
	pruned := 0
	for _, m := range t.missions {
		if m.Status().IsTerminal() {
			delete(t.byID, m.ID())
			pruned++
			continue
		}
		kept = append(kept, m)
	}
	t.missions = kept
	return pruned
}

// Mission returns the mission with the given ID
func (t *Tracker) Mission(missionID string) (*Mission, error) {
	m, ok := t.byID[missionID]
	if !ok {
		return nil, &ErrMissionNotFound{MissionID: missionID}
	}
	return m, nil
}

// Missions returns the missions in dispatch sequence
func (t *Tracker) Missions() []*Mission {
	out := make([]*Mission, len(t.missions))
	copy(out, t.missions)
	return out
}

// RestoreMission re-attaches a reconstructed mission. Only repositories
// restoring a saved session should call this.
func (t *Tracker) RestoreMission(m *Mission) {
	t.missions = append(t.missions, m)
	t.byID[m.ID()] = m
}

func (t *Tracker) skip(m *Mission, err error) {
	if t.onSkip != nil {
		t.onSkip(m, err)
	}
}
