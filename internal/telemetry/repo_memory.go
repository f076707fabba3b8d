package telemetry

import (
	"maps"
	"sync"
	"time"

	"estimador/internal/clock"
)

// Repository stores telemetry events
type Repository interface {
	Recorder
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps the most recent events, up to a fixed capacity.
type MemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	capacity int
	events   []Event
	nextID   int
}

const DefaultCapacity = 10000

func NewMemoryRepository(c clock.Clock, capacity int) *MemoryRepository {
	if c == nil {
		c = clock.Real{}
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryRepository{clock: c, capacity: capacity, nextID: 1}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: r.clock.Now(),
		Metadata:  maps.Clone(metadata),
	})
	r.nextID++

	if over := len(r.events) - r.capacity; over > 0 {
		r.events = append(r.events[:0:0], r.events[over:]...)
	}
	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
	r.nextID = 1
	return nil
}
