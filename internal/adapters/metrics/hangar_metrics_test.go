package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/starforge/starforge-go/internal/application/session"
)

func TestHangarCollector_ObserverCountsEvents(t *testing.T) {
	// Arrange - unregistered collector, counters still work standalone
	collector := NewHangarCollector()
	observe := collector.Observer()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Act
	observe(session.Event{Kind: session.EventOrderStarted, EntityID: "o-1", At: now})
	observe(session.Event{Kind: session.EventOrderStarted, EntityID: "o-2", At: now})
	observe(session.Event{Kind: session.EventOrderCompleted, EntityID: "o-1", At: now})
	observe(session.Event{Kind: session.EventOrderCancelled, EntityID: "o-2", At: now})
	observe(session.Event{Kind: session.EventMissionDispatched, EntityID: "m-1", At: now})
	observe(session.Event{Kind: session.EventMissionArrived, EntityID: "m-1", At: now})
	observe(session.Event{Kind: session.EventMissionRecalled, EntityID: "m-2", At: now})
	observe(session.Event{Kind: session.EventAdvanced, At: now})

	// Assert - each kind lands on its own counter, ticks count nothing
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.ordersStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.ordersCompleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.ordersCancelled))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.missionsDispatched))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.missionsArrived))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.missionsRecalled))
}

func TestHangarCollector_UpdateCapacity(t *testing.T) {
	// Arrange
	collector := NewHangarCollector()

	// Act
	collector.UpdateCapacity(4, 6, 90)

	// Assert
	assert.Equal(t, 4.0, testutil.ToFloat64(collector.capacityUsed))
	assert.Equal(t, 6.0, testutil.ToFloat64(collector.capacityReserved))
	assert.Equal(t, 90.0, testutil.ToFloat64(collector.capacityFree))
}
