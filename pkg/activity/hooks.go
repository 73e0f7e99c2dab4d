package activity

import (
	"context"
	"errors"
	"sync"
)

// Hook receives normalized activity events.
type Hook interface {
	Notify(ctx context.Context, evt Event) error
}

// HookFunc adapts a function into a Hook.
type HookFunc func(ctx context.Context, evt Event) error

// Notify calls f.
func (f HookFunc) Notify(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// Hooks fans an event out to several hooks. Events without a verb or object
// type are dropped.
type Hooks []Hook

// Notify normalizes evt and delivers it to every hook, joining errors.
func (hooks Hooks) Notify(ctx context.Context, evt Event) error {
	evt = NormalizeEvent(evt)
	if !evt.valid() {
		return nil
	}
	var err error
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		err = errors.Join(err, hook.Notify(ctx, evt))
	}
	return err
}

// CaptureHook stores events in memory. Used by tests.
type CaptureHook struct {
	mu     sync.Mutex
	Events []Event
}

// Notify appends evt.
func (h *CaptureHook) Notify(_ context.Context, evt Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Events = append(h.Events, evt)
	return nil
}
