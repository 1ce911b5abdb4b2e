package mission_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge/starforge-go/internal/domain/ledger"
	"github.com/starforge/starforge-go/internal/domain/mission"
	"github.com/starforge/starforge-go/internal/domain/shared"
)

func TestTracker_DispatchAndArrive(t *testing.T) {
	// Arrange
	led := ledger.New(map[shared.Resource]int{shared.ResourceCredits: 10})
	tracker := mission.NewTracker(led)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	m, err := tracker.Dispatch("salvage-run", now, 10*time.Minute, map[shared.Resource]int{
		shared.ResourceCredits:   90,
		shared.ResourceDeuterium: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, mission.MissionStatusUnderway, m.Status())
	assert.Equal(t, now.Add(10*time.Minute), m.ArrivesAt())

	// Act - not due yet, then due
	early := tracker.Advance(now.Add(9 * time.Minute))
	arrived := tracker.Advance(now.Add(10 * time.Minute))

	// Assert - reward credited exactly once on arrival
	assert.Empty(t, early)
	require.Len(t, arrived, 1)
	assert.Equal(t, mission.MissionStatusArrived, m.Status())
	assert.Equal(t, 100, led.Balance(shared.ResourceCredits))
	assert.Equal(t, 25, led.Balance(shared.ResourceDeuterium))

	// Idempotent: a later tick credits nothing further
	assert.Empty(t, tracker.Advance(now.Add(time.Hour)))
	assert.Equal(t, 100, led.Balance(shared.ResourceCredits))
}

func TestTracker_Recall_ForfeitsReward(t *testing.T) {
	// Arrange
	led := ledger.New(nil)
	tracker := mission.NewTracker(led)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m, err := tracker.Dispatch("deep-scan", now, time.Hour, map[shared.Resource]int{
		shared.ResourceCredits: 500,
	})
	require.NoError(t, err)

	// Act
	recalled, err := tracker.Recall(m.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, mission.MissionStatusRecalled, recalled.Status())

	// A tick past the original arrival must not credit the reward
	assert.Empty(t, tracker.Advance(now.Add(2*time.Hour)))
	assert.Equal(t, 0, led.Balance(shared.ResourceCredits))
}

func TestTracker_Recall_TerminalMissionRejected(t *testing.T) {
	// Arrange - mission already arrived
	led := ledger.New(nil)
	tracker := mission.NewTracker(led)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m, err := tracker.Dispatch("deep-scan", now, time.Minute, nil)
	require.NoError(t, err)
	tracker.Advance(now.Add(time.Minute))

	// Act
	_, err = tracker.Recall(m.ID())

	// Assert
	var notRecallable *mission.ErrMissionNotRecallable
	require.ErrorAs(t, err, &notRecallable)
	assert.Equal(t, mission.MissionStatusArrived, notRecallable.Status)
}

func TestTracker_Recall_UnknownMission(t *testing.T) {
	tracker := mission.NewTracker(ledger.New(nil))

	_, err := tracker.Recall("no-such-mission")

	var notFound *mission.ErrMissionNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestTracker_Dispatch_RejectsNonPositiveDuration(t *testing.T) {
	tracker := mission.NewTracker(ledger.New(nil))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := tracker.Dispatch("instant", now, 0, nil)

	var invalid *mission.ErrInvalidMissionDuration
	assert.ErrorAs(t, err, &invalid)
}

func TestTracker_Advance_SkipsCorruptReward(t *testing.T) {
	// Arrange - a restored mission carrying a negative reward amount
	led := ledger.New(nil)
	tracker := mission.NewTracker(led)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	corrupt := mission.ReconstructMission(
		"m-corrupt", "bad-data", mission.MissionStatusUnderway,
		now, now.Add(time.Minute),
		map[shared.Resource]int{shared.ResourceCredits: -10},
	)
	tracker.RestoreMission(corrupt)

	var skipped []string
	tracker.SetSkipHandler(func(m *mission.Mission, err error) {
		skipped = append(skipped, m.ID())
		assert.Error(t, err)
	})

	// Act
	arrived := tracker.Advance(now.Add(2 * time.Minute))

	// Assert - reported and not counted as arrived
	assert.Empty(t, arrived)
	assert.Equal(t, []string{"m-corrupt"}, skipped)
	assert.Equal(t, 0, led.Balance(shared.ResourceCredits))
}

func TestTracker_PruneTerminal(t *testing.T) {
	// Arrange - one arrived, one recalled, one underway
	led := ledger.New(nil)
	tracker := mission.NewTracker(led)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	done, err := tracker.Dispatch("short-hop", now, time.Minute, nil)
	require.NoError(t, err)
	dropped, err := tracker.Dispatch("aborted", now, time.Hour, nil)
	require.NoError(t, err)
	underway, err := tracker.Dispatch("long-haul", now, 2*time.Hour, nil)
	require.NoError(t, err)

	_, err = tracker.Recall(dropped.ID())
	require.NoError(t, err)
	tracker.Advance(now.Add(time.Minute))
	require.Equal(t, mission.MissionStatusArrived, done.Status())

	// Act
	pruned := tracker.PruneTerminal()

	// Assert
	assert.Equal(t, 2, pruned)
	missions := tracker.Missions()
	require.Len(t, missions, 1)
	assert.Equal(t, underway.ID(), missions[0].ID())

	_, err = tracker.Mission(done.ID())
	var notFound *mission.ErrMissionNotFound
	assert.ErrorAs(t, err, &notFound)
}
