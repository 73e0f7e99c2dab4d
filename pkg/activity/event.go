// Package activity records admin mutations as activity events and keeps the
// recent ones in memory for the notifications tile.
package activity

import (
	"maps"
	"strings"
	"time"
)

// Event describes one operator action against a collection.
type Event struct {
	Verb       string         `json:"verb"`
	ActorID    string         `json:"actor_id,omitempty"`
	ObjectType string         `json:"object_type"`
	ObjectID   string         `json:"object_id"`
	Channel    string         `json:"channel,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NormalizeEvent trims identifiers, clones metadata and stamps OccurredAt
// when unset.
func NormalizeEvent(evt Event) Event {
	evt.Verb = strings.TrimSpace(evt.Verb)
	evt.ActorID = strings.TrimSpace(evt.ActorID)
	evt.ObjectType = strings.TrimSpace(evt.ObjectType)
	evt.ObjectID = strings.TrimSpace(evt.ObjectID)
	evt.Channel = strings.TrimSpace(evt.Channel)
	if evt.Metadata != nil {
		evt.Metadata = maps.Clone(evt.Metadata)
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	return evt
}

func (evt Event) valid() bool {
	return evt.Verb != "" && evt.ObjectType != ""
}
