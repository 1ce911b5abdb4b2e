package session

import (
	"sync"
	"time"

	"github.com/starforge/starforge-go/internal/domain/catalog"
	"github.com/starforge/starforge-go/internal/domain/hangar"
	"github.com/starforge/starforge-go/internal/domain/ledger"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

// Session is the explicit state container for one player: catalog
// reference, resource ledger, build-order queue, mission tracker and
// hangar capacity.
//
// Every mutation (user action or heartbeat advance) runs under one mutex,
// so a user action issued between two heartbeats is fully applied before
// the next Advance, and Advance itself is atomic: no reader observes a
// half-advanced session. Different players' sessions share nothing and
// advance independently.
type Session struct {
	mu sync.Mutex

	playerID string
	clock    shared.Clock
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	queue    *hangar.Queue
	missions *mission.Tracker

	observers []Observer
}

// Config carries the constructor inputs for a session
type Config struct {
	PlayerID       string
	Catalog        *catalog.Catalog
	Clock          shared.Clock
	HangarCapacity int
	OpeningStock   map[shared.Resource]int
}

// New creates a fresh session with an empty queue and tracker
func New(cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = shared.NewRealClock()
	}

	led := ledger.New(cfg.OpeningStock)
	return &Session{
		playerID: cfg.PlayerID,
		clock:    cfg.Clock,
		catalog:  cfg.Catalog,
		ledger:   led,
		queue:    hangar.NewQueue(cfg.Catalog, led, cfg.HangarCapacity),
		missions: mission.NewTracker(led),
	}
}

// Subscribe registers an observer for session events. Observers run after
// the mutation, outside the session lock.
func (s *Session) Subscribe(obs Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

// SetSkipHandlers installs diagnostic callbacks on the queue and tracker
func (s *Session) SetSkipHandlers(onOrderSkip hangar.SkipHandler, onMissionSkip mission.SkipHandler) {
	s.mu.Lock()
	s.queue.SetSkipHandler(onOrderSkip)
	s.missions.SetSkipHandler(onMissionSkip)
	s.mu.Unlock()
}

// StartOrder admits a build order at the current clock time
func (s *Session) StartOrder(blueprintID string, quantity int) (*hangar.BuildOrder, error) {
	s.mu.Lock()
	now := s.clock.Now()
	order, err := s.queue.StartOrder(blueprintID, quantity, now)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	s.emit(Event{Kind: EventOrderStarted, EntityID: order.ID(), At: now})
	return order, nil
}

// CancelOrder cancels a non-terminal order. No resources are refunded.
func (s *Session) CancelOrder(orderID string) error {
	s.mu.Lock()
	now := s.clock.Now()
	order, err := s.queue.CancelOrder(orderID)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.emit(Event{Kind: EventOrderCancelled, EntityID: order.ID(), At: now})
	return nil
}

// DispatchMission launches a mission at the current clock time
func (s *Session) DispatchMission(name string, duration time.Duration, reward map[shared.Resource]int) (*mission.Mission, error) {
	s.mu.Lock()
	now := s.clock.Now()
	m, err := s.missions.Dispatch(name, now, duration, reward)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	s.emit(Event{Kind: EventMissionDispatched, EntityID: m.ID(), At: now})
	return m, nil
}

// RecallMission aborts an underway mission, forfeiting its reward
func (s *Session) RecallMission(missionID string) error {
	s.mu.Lock()
	now := s.clock.Now()
	m, err := s.missions.Recall(missionID)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.emit(Event{Kind: EventMissionRecalled, EntityID: m.ID(), At: now})
	return nil
}

// Advance moves every time-dependent subsystem to the logical instant now.
// The heartbeat driver calls this once per tick with a single timestamp so
// the queue and the mission tracker never drift relative to each other.
// It is idempotent and safe with a now that jumped far ahead (process
// suspended, client reopened): all orders and missions that became due in
// the gap resolve in this one call.
func (s *Session) Advance(now time.Time) {
	s.mu.Lock()
	completed := s.queue.Advance(now)
	arrived := s.missions.Advance(now)
	s.mu.Unlock()

	for _, order := range completed {
		s.emit(Event{Kind: EventOrderCompleted, EntityID: order.ID(), At: now})
	}
	for _, m := range arrived {
		s.emit(Event{Kind: EventMissionArrived, EntityID: m.ID(), At: now})
	}
	s.emit(Event{Kind: EventAdvanced, At: now})
}

// Decommission removes completed units from the inventory
func (s *Session) Decommission(blueprintID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Decommission(blueprintID, count)
}

// PruneHistory removes terminal orders and missions, returning the counts
func (s *Session) PruneHistory() (orders int, missions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.PruneTerminal(), s.missions.PruneTerminal()
}

// Read-side accessors. Each returns copies so the presentation layer can
// render without holding the session lock.

func (s *Session) PlayerID() string {
	return s.playerID
}

func (s *Session) Queue() []*hangar.BuildOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Orders()
}

func (s *Session) Inventory() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Inventory()
}

func (s *Session) Capacity() hangar.CapacitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Capacity()
}

func (s *Session) HangarCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.HangarCapacity()
}

func (s *Session) Missions() []*mission.Mission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missions.Missions()
}

func (s *Session) Stock() map[shared.Resource]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Stock()
}

func (s *Session) emit(event Event) {
	s.mu.Lock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, obs := range observers {
		obs(event)
	}
}
