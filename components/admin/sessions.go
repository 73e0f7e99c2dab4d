package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-admin-console/components/collection"
)

// ErrUnknownSession is returned when a session id is not registered.
var ErrUnknownSession = errors.New("admin: unknown session")

// Sessions keeps one Workspace per operator session.
type Sessions struct {
	mu        sync.RWMutex
	items     map[string]*Workspace
	opts      Options
	telemetry Telemetry
	newID     func() string
	broadcast *collection.BroadcastHook
}

// SessionsOptions configures a registry. Workspace is the template applied
// to every new session; its ID is replaced by the generated session id and a
// nil Broadcast is replaced by one shared across sessions.
type SessionsOptions struct {
	Workspace Options
	NewID     func() string
}

// NewSessions builds an empty registry.
func NewSessions(opts SessionsOptions) *Sessions {
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	workspace := opts.Workspace
	if workspace.Broadcast == nil {
		workspace.Broadcast = collection.NewBroadcastHook()
	}
	return &Sessions{
		items:     make(map[string]*Workspace),
		opts:      workspace,
		telemetry: normalizeTelemetry(workspace.Telemetry),
		newID:     newID,
		broadcast: workspace.Broadcast,
	}
}

// Broadcast streams the changes of every session, scoped by session id.
func (s *Sessions) Broadcast() *collection.BroadcastHook {
	return s.broadcast
}

// Create starts a session with a freshly seeded workspace.
func (s *Sessions) Create(ctx context.Context) *Workspace {
	opts := s.opts
	opts.ID = s.newID()
	workspace := NewWorkspace(opts)
	s.mu.Lock()
	s.items[workspace.ID] = workspace
	s.mu.Unlock()
	s.telemetry.Record(ctx, "admin.session.create", map[string]any{"session": workspace.ID})
	return workspace
}

// Get returns the workspace for id.
func (s *Sessions) Get(id string) (*Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	workspace, ok := s.items[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return workspace, nil
}

// Delete ends a session. It reports false for unknown ids.
func (s *Sessions) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	_, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()
	if ok {
		s.telemetry.Record(ctx, "admin.session.delete", map[string]any{"session": id})
	}
	return ok
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
