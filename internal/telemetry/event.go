// Package telemetry counts what visitors do with the estimator. Events live in
// memory only and never include the encoded selection itself.
package telemetry

import "time"

type EventType string

const (
	EventQuoteViewed        EventType = "quote_viewed"
	EventTaskToggled        EventType = "task_toggled"
	EventQuantitySet        EventType = "quantity_set"
	EventStartDateSet       EventType = "start_date_set"
	EventDocumentDownloaded EventType = "document_downloaded"
	EventShareOpened        EventType = "share_opened"
)

type Event struct {
	ID        int           `json:"id"`
	Type      EventType     `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Metadata  EventMetadata `json:"metadata,omitempty"`
}

type EventMetadata map[string]string

// Recorder is what the web shell writes to.
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
}
