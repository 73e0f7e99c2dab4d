package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHookSubscribe(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	defer cancel()
	event := ChangeEvent{Collection: "orders", Action: ActionTransition, ID: 1}

	require.NoError(t, hook.CollectionChanged(context.Background(), event))

	select {
	case got := <-ch:
		assert.Equal(t, event, got)
	default:
		t.Fatalf("expected event to be delivered")
	}
}

func TestBroadcastHookCancelClosesChannel(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	assert.Equal(t, 1, hook.Subscribers())

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, hook.Subscribers())
}

func TestChangeHooksJoinErrors(t *testing.T) {
	first := &recordingHook{err: errors.New("first")}
	second := &recordingHook{}
	hooks := ChangeHooks{first, nil, second}

	err := hooks.CollectionChanged(context.Background(), ChangeEvent{Action: ActionDelete})

	require.Error(t, err)
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}

func TestScopedStampsEvents(t *testing.T) {
	inner := &recordingHook{}

	require.NoError(t, Scoped("s-1", inner).CollectionChanged(context.Background(), ChangeEvent{Collection: "orders"}))
	require.NoError(t, Scoped("s-1", nil).CollectionChanged(context.Background(), ChangeEvent{}))

	require.Len(t, inner.events, 1)
	assert.Equal(t, "s-1", inner.events[0].Scope)
}
