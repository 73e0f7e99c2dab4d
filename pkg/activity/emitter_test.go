package activity

import (
	"context"
	"testing"
)

type recordingHook struct {
	events []Event
}

func (h *recordingHook) Notify(_ context.Context, evt Event) error {
	h.events = append(h.events, evt)
	return nil
}

func TestEmitterDefaultsChannelAndEmits(t *testing.T) {
	hook := &recordingHook{}
	em := NewEmitter(Hooks{hook}, Config{Enabled: true})
	if !em.Enabled() {
		t.Fatalf("expected emitter enabled")
	}
	err := em.Emit(context.Background(), Event{
		Verb:       "commit",
		ObjectType: "orders",
		ObjectID:   "3",
	})
	if err != nil {
		t.Fatalf("emit returned error: %v", err)
	}
	if len(hook.events) != 1 {
		t.Fatalf("expected event emitted, got %d", len(hook.events))
	}
	if hook.events[0].Channel != "admin" {
		t.Fatalf("expected default channel admin, got %q", hook.events[0].Channel)
	}
}

func TestEmitterKeepsExplicitChannel(t *testing.T) {
	hook := &recordingHook{}
	em := NewEmitter(Hooks{hook}, Config{Enabled: true, Channel: "console"})
	_ = em.Emit(context.Background(), Event{Verb: "delete", ObjectType: "users", Channel: "ws"})
	if len(hook.events) != 1 || hook.events[0].Channel != "ws" {
		t.Fatalf("expected event channel preserved, got %+v", hook.events)
	}
}

func TestEmitterDisabledWithoutHooks(t *testing.T) {
	em := NewEmitter(nil, Config{Enabled: true})
	if em.Enabled() {
		t.Fatalf("expected emitter disabled without hooks")
	}
	if err := em.Emit(context.Background(), Event{Verb: "x", ObjectType: "y"}); err != nil {
		t.Fatalf("disabled emitter returned error: %v", err)
	}
}
