package session

import (
	"time"

	"github.com/starforge/starforge-go/internal/domain/catalog"
	"github.com/starforge/starforge-go/internal/domain/hangar"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// Snapshot is the plain-data form of a session: order list, mission list,
// inventory map, ledger stock and the capacity constant. Persistence
// adapters save and restore exactly this; the session owns no wire format.
type Snapshot struct {
	PlayerID       string
	HangarCapacity int
	Stock          map[shared.Resource]int
	Inventory      map[string]int
	Orders         []OrderRecord
	Missions       []MissionRecord
	CapturedAt     time.Time
}

// OrderRecord is the plain-data form of a build order
type OrderRecord struct {
	ID          string
	BlueprintID string
	Quantity    int
	Status      hangar.OrderStatus
	StartTime   time.Time
	EndTime     time.Time
}

// MissionRecord is the plain-data form of a mission
type MissionRecord struct {
	ID         string
	Name       string
	Status     mission.MissionStatus
	DepartedAt time.Time
	ArrivesAt  time.Time
	Reward     map[shared.Resource]int
}

// Snapshot captures the session as plain data under the session lock
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.queue.Orders()
	orderRecords := make([]OrderRecord, len(orders))
	for i, o := range orders {
		orderRecords[i] = OrderRecord{
			ID:          o.ID(),
			BlueprintID: o.BlueprintID(),
			Quantity:    o.Quantity(),
			Status:      o.Status(),
			StartTime:   o.StartTime(),
			EndTime:     o.EndTime(),
		}
	}

	missions := s.missions.Missions()
	missionRecords := make([]MissionRecord, len(missions))
	for i, m := range missions {
		missionRecords[i] = MissionRecord{
			ID:         m.ID(),
			Name:       m.Name(),
			Status:     m.Status(),
			DepartedAt: m.DepartedAt(),
			ArrivesAt:  m.ArrivesAt(),
			Reward:     m.Reward(),
		}
	}

	return Snapshot{
		PlayerID:       s.playerID,
		HangarCapacity: s.queue.HangarCapacity(),
		Stock:          s.ledger.Stock(),
		Inventory:      s.queue.Inventory(),
		Orders:         orderRecords,
		Missions:       missionRecords,
		CapturedAt:     s.clock.Now(),
	}
}

// Restore rebuilds a session from a snapshot. The next Advance resolves
// everything that became due while the session was offline, so a client
// closed for hours recovers the correct state from wall-clock time alone
// without replaying missed ticks.
func Restore(snap Snapshot, cat *catalog.Catalog, clock shared.Clock) *Session {
	s := New(Config{
		PlayerID:       snap.PlayerID,
		Catalog:        cat,
		Clock:          clock,
		HangarCapacity: snap.HangarCapacity,
		OpeningStock:   snap.Stock,
	})

	s.queue.RestoreInventory(snap.Inventory)
	for _, rec := range snap.Orders {
		s.queue.RestoreOrder(hangar.ReconstructOrder(
			rec.ID, rec.BlueprintID, rec.Quantity, rec.Status,
			rec.StartTime, rec.EndTime,
		))
	}
	for _, rec := range snap.Missions {
		s.missions.RestoreMission(mission.ReconstructMission(
			rec.ID, rec.Name, rec.Status,
			rec.DepartedAt, rec.ArrivesAt, rec.Reward,
		))
	}
	return s
}
