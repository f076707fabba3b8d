package telemetry

import (
	"cmp"
	"slices"
	"time"
)

type Stats struct {
	Since       string            `json:"since"`
	EventCounts map[EventType]int `json:"event_counts"`
	Downloads   int               `json:"downloads"`
	Shares      int               `json:"shares"`
	TopTasks    []TaskCount       `json:"top_tasks"`
}

type TaskCount struct {
	TaskID string `json:"task_id"`
	Picks  int    `json:"picks"`
}

const topTasksLimit = 10

// CalculateStats summarizes events. A pick is a toggle or quantity change that
// left the task active.
func CalculateStats(events []Event, since time.Time) Stats {
	stats := Stats{
		Since:       since.Format(time.DateOnly),
		EventCounts: make(map[EventType]int),
	}
	picks := map[string]int{}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		switch event.Type {
		case EventDocumentDownloaded:
			stats.Downloads++
		case EventShareOpened:
			stats.Shares++
		case EventTaskToggled, EventQuantitySet:
			if id := event.Metadata["task_id"]; id != "" && event.Metadata["active"] == "true" {
				picks[id]++
			}
		}
	}

	for id, n := range picks {
		stats.TopTasks = append(stats.TopTasks, TaskCount{TaskID: id, Picks: n})
	}
	slices.SortFunc(stats.TopTasks, func(a, b TaskCount) int {
		if c := cmp.Compare(b.Picks, a.Picks); c != 0 {
			return c
		}
		return cmp.Compare(a.TaskID, b.TaskID)
	})
	if len(stats.TopTasks) > topTasksLimit {
		stats.TopTasks = stats.TopTasks[:topTasksLimit]
	}
	return stats
}
