package telemetry

import (
	"testing"
	"time"

	"estimador/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_FilterByTimeAndType(t *testing.T) {
	c := clock.NewFake(time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(c, 0)

	require.NoError(t, repo.RecordEvent(EventQuoteViewed, nil))
	c.AdvanceDays(1)
	require.NoError(t, repo.RecordEvent(EventShareOpened, nil))
	require.NoError(t, repo.RecordEvent(EventQuoteViewed, nil))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, all[2].ID)

	recent, err := repo.GetEvents(time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), []EventType{EventQuoteViewed})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, EventQuoteViewed, recent[0].Type)

	require.NoError(t, repo.Clear())
	all, _ = repo.GetEvents(time.Time{}, nil)
	assert.Empty(t, all)
}

func TestMemoryRepository_DropsOldestOverCapacity(t *testing.T) {
	repo := NewMemoryRepository(nil, 2)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.RecordEvent(EventTaskToggled, EventMetadata{"task_id": id}))
	}

	events, _ := repo.GetEvents(time.Time{}, nil)
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].Metadata["task_id"])
	assert.Equal(t, "c", events[1].Metadata["task_id"])
}

func TestMemoryRepository_CopiesMetadata(t *testing.T) {
	repo := NewMemoryRepository(nil, 0)
	meta := EventMetadata{"task_id": "blog"}
	require.NoError(t, repo.RecordEvent(EventTaskToggled, meta))
	meta["task_id"] = "logo"

	events, _ := repo.GetEvents(time.Time{}, nil)
	assert.Equal(t, "blog", events[0].Metadata["task_id"])
}

func TestCalculateStats(t *testing.T) {
	events := []Event{
		{Type: EventTaskToggled, Metadata: EventMetadata{"task_id": "blog", "active": "true"}},
		{Type: EventTaskToggled, Metadata: EventMetadata{"task_id": "blog", "active": "false"}},
		{Type: EventQuantitySet, Metadata: EventMetadata{"task_id": "blog", "active": "true"}},
		{Type: EventTaskToggled, Metadata: EventMetadata{"task_id": "logo", "active": "true"}},
		{Type: EventTaskToggled, Metadata: EventMetadata{"task_id": "basic-store", "active": "true"}},
		{Type: EventDocumentDownloaded},
		{Type: EventShareOpened},
		{Type: EventShareOpened},
	}

	stats := CalculateStats(events, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-10-01", stats.Since)
	assert.Equal(t, 1, stats.Downloads)
	assert.Equal(t, 2, stats.Shares)
	assert.Equal(t, 4, stats.EventCounts[EventTaskToggled])
	assert.Equal(t, []TaskCount{
		{TaskID: "blog", Picks: 2},
		{TaskID: "basic-store", Picks: 1},
		{TaskID: "logo", Picks: 1},
	}, stats.TopTasks)
}
