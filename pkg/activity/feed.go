package activity

import (
	"context"
	"sync"
	"time"
)

const defaultFeedCapacity = 200

// Feed keeps the most recent events in memory, newest last.
type Feed struct {
	mu       sync.RWMutex
	capacity int
	events   []Event
}

// NewFeed builds a feed retaining at most capacity events.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &Feed{capacity: capacity}
}

// Notify satisfies Hook.
func (f *Feed) Notify(_ context.Context, evt Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	if over := len(f.events) - f.capacity; over > 0 {
		f.events = append([]Event(nil), f.events[over:]...)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (f *Feed) Recent(limit int) []Event {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if limit <= 0 || limit > len(f.events) {
		limit = len(f.events)
	}
	out := make([]Event, 0, limit)
	for i := len(f.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.events[i])
	}
	return out
}

// CountSince counts retained events that occurred at or after since.
func (f *Feed) CountSince(since time.Time) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, evt := range f.events {
		if !evt.OccurredAt.Before(since) {
			n++
		}
	}
	return n
}
