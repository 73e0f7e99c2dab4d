package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/looplab/fsm"
)

// Mode is the Edit Session state: idle, adding a new record, or editing a
// stored one.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeAdding  Mode = "adding"
	ModeEditing Mode = "editing"
)

const (
	eventBeginAdd  = "begin_add"
	eventBeginEdit = "begin_edit"
	eventCommit    = "commit"
	eventCancel    = "cancel"
)

// SessionState is the read view of an Edit Session. EditingID is only set in
// ModeEditing.
type SessionState struct {
	Mode      Mode   `json:"mode"`
	EditingID int    `json:"editing_id,omitempty"`
	Draft     Draft  `json:"draft"`
	Error     string `json:"error,omitempty"`
}

// Session holds at most one in-flight draft for a collection and commits it
// into the store.
type Session[T any] struct {
	kind      Kind[T]
	store     *Store[T]
	telemetry Telemetry

	mu        sync.Mutex
	machine   *fsm.FSM
	editingID int
	draft     Draft
	message   string
}

// NewSession builds an idle session bound to store.
func NewSession[T any](kind Kind[T], store *Store[T], telemetry Telemetry) *Session[T] {
	s := &Session[T]{
		kind:      kind,
		store:     store,
		telemetry: normalizeTelemetry(telemetry),
		draft:     kind.Blank(),
	}
	states := []string{string(ModeIdle), string(ModeAdding), string(ModeEditing)}
	s.machine = fsm.NewFSM(
		string(ModeIdle),
		fsm.Events{
			{Name: eventBeginAdd, Src: states, Dst: string(ModeAdding)},
			{Name: eventBeginEdit, Src: states, Dst: string(ModeEditing)},
			{Name: eventCommit, Src: []string{string(ModeAdding), string(ModeEditing)}, Dst: string(ModeIdle)},
			{Name: eventCancel, Src: states, Dst: string(ModeIdle)},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				s.telemetry.Record(ctx, "collection.session.transition", map[string]any{
					"collection": kind.Name(),
					"event":      e.Event,
					"from":       e.Src,
					"to":         e.Dst,
				})
			},
		},
	)
	return s
}

// BeginAdd opens a blank draft for a new record, discarding any open draft.
func (s *Session[T]) BeginAdd(ctx context.Context) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fire(ctx, eventBeginAdd)
	s.editingID = 0
	s.draft = s.kind.Blank()
	s.message = ""
	return s.draft.Clone()
}

// BeginEdit opens a draft copied from record. The draft never aliases the
// stored record.
func (s *Session[T]) BeginEdit(ctx context.Context, record T) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fire(ctx, eventBeginEdit)
	s.editingID = s.kind.Identity(record)
	s.draft = s.kind.DraftOf(record).Clone()
	s.message = ""
	return s.draft.Clone()
}

// UpdateField sets one draft field and returns the updated draft.
func (s *Session[T]) UpdateField(field, value string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode() == ModeIdle {
		return nil, ErrNoDraft
	}
	if !hasField(s.kind.Fields(), field) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	s.draft[field] = value
	return s.draft.Clone(), nil
}

// Commit validates the draft and merges it into the store. Edits replace the
// stored record sharing the session's source id; adds append. On validation
// failure the draft stays open with the message attached and the store is
// untouched. An edit whose source record is gone closes the draft without
// storing anything.
func (s *Session[T]) Commit(ctx context.Context) (T, error) {
	record, _, err := s.commit(ctx)
	return record, err
}

// commit reports whether the store changed.
func (s *Session[T]) commit(ctx context.Context) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	mode := s.mode()
	if mode == ModeIdle {
		return zero, false, ErrNoDraft
	}
	record, err := s.kind.Build(s.draft.Clone())
	if err != nil {
		s.message = err.Error()
		return zero, false, err
	}
	stored := true
	if mode == ModeEditing {
		record = s.kind.WithIdentity(record, s.editingID)
		stored = s.store.Replace(s.editingID, record)
	} else {
		record = s.store.Add(record)
	}
	s.fire(ctx, eventCommit)
	s.reset()
	return record, stored, nil
}

// Cancel discards the draft without touching the store.
func (s *Session[T]) Cancel(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fire(ctx, eventCancel)
	s.reset()
}

// State returns a snapshot of the session.
func (s *Session[T]) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := SessionState{
		Mode:  s.mode(),
		Draft: s.draft.Clone(),
		Error: s.message,
	}
	if state.Mode == ModeEditing {
		state.EditingID = s.editingID
	}
	return state
}

func (s *Session[T]) mode() Mode {
	return Mode(s.machine.Current())
}

func (s *Session[T]) reset() {
	s.editingID = 0
	s.draft = s.kind.Blank()
	s.message = ""
}

// fire runs an fsm event. Re-entering the current state (begin_add while
// adding, cancel while idle) is not an error.
func (s *Session[T]) fire(ctx context.Context, event string) {
	err := s.machine.Event(ctx, event)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}
	s.telemetry.Record(ctx, "collection.session.error", map[string]any{
		"collection": s.kind.Name(),
		"event":      event,
		"error":      err.Error(),
	})
}
