package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge/starforge-go/internal/application/session"
	"github.com/starforge/starforge-go/internal/domain/catalog"
	"github.com/starforge/starforge-go/internal/domain/hangar"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]*catalog.BlueprintSpec{
		{
			ID:                   "interceptor-mk1",
			Name:                 "Interceptor Mk I",
			Role:                 "fighter",
			CostPerUnit:          map[shared.Resource]int{shared.ResourceOrichalkum: 100},
			BuildDurationSeconds: 60,
			CapacityFootprint:    2,
		},
	})
	require.NoError(t, err)
	return cat
}

func newTestSession(t *testing.T, clock *shared.MockClock) *session.Session {
	t.Helper()
	return session.New(session.Config{
		PlayerID:       "commander",
		Catalog:        testCatalog(t),
		Clock:          clock,
		HangarCapacity: 10,
		OpeningStock:   map[shared.Resource]int{shared.ResourceOrichalkum: 1000},
	})
}

func TestSession_OrderLifecycleEmitsEvents(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	sess := newTestSession(t, clock)

	var events []session.Event
	sess.Subscribe(func(e session.Event) { events = append(events, e) })

	// Act
	order, err := sess.StartOrder("interceptor-mk1", 2)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	sess.Advance(clock.Now())

	// Assert
	require.Len(t, events, 3)
	assert.Equal(t, session.EventOrderStarted, events[0].Kind)
	assert.Equal(t, order.ID(), events[0].EntityID)
	assert.Equal(t, session.EventOrderCompleted, events[1].Kind)
	assert.Equal(t, order.ID(), events[1].EntityID)
	assert.Equal(t, session.EventAdvanced, events[2].Kind)

	// Every event on the completing tick carries the tick's timestamp
	assert.Equal(t, clock.Now(), events[1].At)
	assert.Equal(t, clock.Now(), events[2].At)
}

func TestSession_FailedActionEmitsNothing(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	sess := newTestSession(t, clock)

	var events []session.Event
	sess.Subscribe(func(e session.Event) { events = append(events, e) })

	// Act
	_, err := sess.StartOrder("retired-hull", 1)

	// Assert
	assert.Error(t, err)
	assert.Empty(t, events)
}

func TestSession_MissionRewardCreditedOnArrival(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	sess := newTestSession(t, clock)

	m, err := sess.DispatchMission("salvage-run", 30*time.Minute, map[shared.Resource]int{
		shared.ResourceCredits: 400,
	})
	require.NoError(t, err)

	// Act
	clock.Advance(30 * time.Minute)
	sess.Advance(clock.Now())

	// Assert
	missions := sess.Missions()
	require.Len(t, missions, 1)
	assert.Equal(t, mission.MissionStatusArrived, missions[0].Status())
	assert.Equal(t, m.ID(), missions[0].ID())
	assert.Equal(t, 400, sess.Stock()[shared.ResourceCredits])
}

func TestSession_AdvanceResolvesOrdersAndMissionsAtOneInstant(t *testing.T) {
	// Arrange - an order and a mission both due in the past
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	sess := newTestSession(t, clock)

	_, err := sess.StartOrder("interceptor-mk1", 1)
	require.NoError(t, err)
	_, err = sess.DispatchMission("short-hop", 2*time.Minute, map[shared.Resource]int{
		shared.ResourceCredits: 50,
	})
	require.NoError(t, err)

	var events []session.Event
	sess.Subscribe(func(e session.Event) { events = append(events, e) })

	// Act - one late tick covers both deadlines
	clock.Advance(time.Hour)
	now := clock.Now()
	sess.Advance(now)

	// Assert - both resolved, all events stamped with the same instant
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, now, e.At)
	}
	assert.Equal(t, map[string]int{"interceptor-mk1": 1}, sess.Inventory())
	assert.Equal(t, 50, sess.Stock()[shared.ResourceCredits])
}

func TestSession_SnapshotRestoreRoundTrip(t *testing.T) {
	// Arrange - a session mid-flight: building order, underway mission,
	// some completed inventory and spent stock
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := shared.NewMockClock(start)
	sess := newTestSession(t, clock)

	done, err := sess.StartOrder("interceptor-mk1", 1)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	sess.Advance(clock.Now())
	require.Equal(t, hangar.OrderStatusCompleted, done.Status())

	building, err := sess.StartOrder("interceptor-mk1", 2)
	require.NoError(t, err)
	underway, err := sess.DispatchMission("salvage-run", time.Hour, map[shared.Resource]int{
		shared.ResourceDeuterium: 75,
	})
	require.NoError(t, err)

	// Act - capture, rebuild, then advance past every deadline
	snap := sess.Snapshot()
	restored := session.Restore(snap, testCatalog(t), clock)

	// Assert - state carried over verbatim
	assert.Equal(t, "commander", restored.PlayerID())
	assert.Equal(t, sess.Stock(), restored.Stock())
	assert.Equal(t, sess.Inventory(), restored.Inventory())
	assert.Equal(t, sess.Capacity(), restored.Capacity())
	require.Len(t, restored.Queue(), 2)
	require.Len(t, restored.Missions(), 1)

	// The gap resolves on the first tick after restore
	clock.Advance(2 * time.Hour)
	restored.Advance(clock.Now())

	restoredOrder := restored.Queue()[1]
	assert.Equal(t, building.ID(), restoredOrder.ID())
	assert.Equal(t, hangar.OrderStatusCompleted, restoredOrder.Status())

	restoredMission := restored.Missions()[0]
	assert.Equal(t, underway.ID(), restoredMission.ID())
	assert.Equal(t, mission.MissionStatusArrived, restoredMission.Status())
	assert.Equal(t, 75, restored.Stock()[shared.ResourceDeuterium])
	assert.Equal(t, map[string]int{"interceptor-mk1": 3}, restored.Inventory())
}

func TestSession_PruneHistory(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	sess := newTestSession(t, clock)

	_, err := sess.StartOrder("interceptor-mk1", 1)
	require.NoError(t, err)
	cancelledMission, err := sess.DispatchMission("aborted", time.Hour, nil)
	require.NoError(t, err)
	require.NoError(t, sess.RecallMission(cancelledMission.ID()))

	clock.Advance(time.Minute)
	sess.Advance(clock.Now())

	// Act
	orders, missions := sess.PruneHistory()

	// Assert
	assert.Equal(t, 1, orders)
	assert.Equal(t, 1, missions)
	assert.Empty(t, sess.Queue())
	assert.Empty(t, sess.Missions())

	// Inventory survives pruning
	assert.Equal(t, map[string]int{"interceptor-mk1": 1}, sess.Inventory())
}

func TestSession_Decommission(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	sess := newTestSession(t, clock)
	_, err := sess.StartOrder("interceptor-mk1", 2)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	sess.Advance(clock.Now())

	// Act
	err = sess.Decommission("interceptor-mk1", 2)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, sess.Inventory())
	assert.Equal(t, hangar.CapacitySnapshot{Used: 0, Reserved: 0, Free: 10}, sess.Capacity())
}
