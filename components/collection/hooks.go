package collection

import (
	"context"
	"errors"
	"sync"
)

// Change actions reported to hooks.
const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionTransition = "transition"
)

// ChangeEvent describes a committed mutation of a collection. Scope names
// the owner of the collection when several share one hook.
type ChangeEvent struct {
	Scope      string `json:"scope,omitempty"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         int    `json:"id"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`
	Record     any    `json:"record,omitempty"`
}

// ChangeHook notifies transports (WebSocket, activity feeds) about mutations.
type ChangeHook interface {
	CollectionChanged(ctx context.Context, event ChangeEvent) error
}

// ChangeHookFunc adapts a function into a ChangeHook.
type ChangeHookFunc func(ctx context.Context, event ChangeEvent) error

// CollectionChanged calls f.
func (f ChangeHookFunc) CollectionChanged(ctx context.Context, event ChangeEvent) error {
	return f(ctx, event)
}

// ChangeHooks fans an event out to every hook and joins their errors.
type ChangeHooks []ChangeHook

// CollectionChanged notifies each non-nil hook.
func (hooks ChangeHooks) CollectionChanged(ctx context.Context, event ChangeEvent) error {
	var err error
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		err = errors.Join(err, hook.CollectionChanged(ctx, event))
	}
	return err
}

// Scoped stamps scope on every event before forwarding it to hook.
func Scoped(scope string, hook ChangeHook) ChangeHook {
	return ChangeHookFunc(func(ctx context.Context, event ChangeEvent) error {
		if hook == nil {
			return nil
		}
		event.Scope = scope
		return hook.CollectionChanged(ctx, event)
	})
}

type noopChangeHook struct{}

func (noopChangeHook) CollectionChanged(context.Context, ChangeEvent) error { return nil }

// BroadcastHook fans out change events to in-process subscribers. Slow
// subscribers drop events rather than block mutations.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]chan ChangeEvent
	next int
}

// NewBroadcastHook creates a broadcast hook.
func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{
		subs: make(map[int]chan ChangeEvent),
	}
}

// CollectionChanged satisfies ChangeHook and broadcasts the event.
func (h *BroadcastHook) CollectionChanged(_ context.Context, event ChangeEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel of change events and a cancel func.
func (h *BroadcastHook) Subscribe() (<-chan ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan ChangeEvent, 8)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Subscribers returns the number of active subscriptions.
func (h *BroadcastHook) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
