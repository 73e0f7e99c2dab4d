// Package httpapi implements the collection page endpoints on top of the
// shared commands and queries. Each operation returns a status code and a
// JSON body so any router can serve it; Handlers also exposes net/http
// handlers.
package httpapi

import (
	"context"
	"io"
	"net/http"

	gocommand "github.com/goliatone/go-command"

	"github.com/goliatone/go-admin-console/components/admin/commands"
	"github.com/goliatone/go-admin-console/components/admin/queries"
)

// Handlers exposes one collection page backed by shared commands.
type Handlers[T any] struct {
	Begin      gocommand.Commander[commands.BeginDraftInput]
	Update     gocommand.Commander[commands.UpdateDraftInput]
	Commit     gocommand.Commander[commands.SessionInput]
	Cancel     gocommand.Commander[commands.SessionInput]
	Remove     gocommand.Commander[commands.RemoveRecordInput]
	Transition gocommand.Commander[commands.TransitionInput]
	Filter     gocommand.Commander[commands.FilterInput]
	Page       gocommand.Querier[queries.PageInput, queries.PageView[T]]
}

// NewHandlers wires every command of a page to resolve.
func NewHandlers[T any](resolve commands.Resolver[T], telemetry commands.Telemetry) *Handlers[T] {
	return &Handlers[T]{
		Begin:      commands.NewBeginDraftCommand(resolve, telemetry),
		Update:     commands.NewUpdateDraftCommand(resolve),
		Commit:     commands.NewCommitDraftCommand(resolve, telemetry),
		Cancel:     commands.NewCancelDraftCommand(resolve),
		Remove:     commands.NewRemoveRecordCommand(resolve, telemetry),
		Transition: commands.NewTransitionCommand(resolve, telemetry),
		Filter:     commands.NewSetFilterCommand(resolve),
		Page:       queries.NewPageQuery(resolve),
	}
}

// List returns the page view. A non-nil filter replaces the current one
// first.
func (h *Handlers[T]) List(ctx context.Context, session string, filter *commands.FilterInput) (int, any) {
	if filter != nil {
		filter.Session = session
		if err := h.Filter.Execute(ctx, *filter); err != nil {
			return Failure(err)
		}
	}
	return h.view(ctx, session)
}

// BeginDraft opens a draft from a body of {"id": n}; an empty body or id 0
// starts a new record.
func (h *Handlers[T]) BeginDraft(ctx context.Context, session string, body []byte) (int, any) {
	var msg commands.BeginDraftInput
	if err := decode(body, &msg); err != nil {
		return Failure(err)
	}
	msg.Session = session
	return h.run(ctx, session, h.Begin.Execute(ctx, msg))
}

// UpdateDraft sets a draft field from {"field": f, "value": v}.
func (h *Handlers[T]) UpdateDraft(ctx context.Context, session string, body []byte) (int, any) {
	var msg commands.UpdateDraftInput
	if err := decode(body, &msg); err != nil {
		return Failure(err)
	}
	msg.Session = session
	return h.run(ctx, session, h.Update.Execute(ctx, msg))
}

// CommitDraft validates and merges the draft.
func (h *Handlers[T]) CommitDraft(ctx context.Context, session string) (int, any) {
	return h.run(ctx, session, h.Commit.Execute(ctx, commands.SessionInput{Session: session}))
}

// CancelDraft discards the draft.
func (h *Handlers[T]) CancelDraft(ctx context.Context, session string) (int, any) {
	return h.run(ctx, session, h.Cancel.Execute(ctx, commands.SessionInput{Session: session}))
}

// RemoveRecord deletes id.
func (h *Handlers[T]) RemoveRecord(ctx context.Context, session string, id int) (int, any) {
	return h.run(ctx, session, h.Remove.Execute(ctx, commands.RemoveRecordInput{Session: session, ID: id}))
}

// TransitionRecord changes one field of id from {"field": f, "value": v}.
func (h *Handlers[T]) TransitionRecord(ctx context.Context, session string, id int, body []byte) (int, any) {
	var msg commands.TransitionInput
	if err := decode(body, &msg); err != nil {
		return Failure(err)
	}
	msg.Session = session
	msg.ID = id
	return h.run(ctx, session, h.Transition.Execute(ctx, msg))
}

func (h *Handlers[T]) run(ctx context.Context, session string, err error) (int, any) {
	if err != nil {
		return Failure(err)
	}
	return h.view(ctx, session)
}

func (h *Handlers[T]) view(ctx context.Context, session string) (int, any) {
	view, err := h.Page.Query(ctx, queries.PageInput{Session: session})
	if err != nil {
		return Failure(err)
	}
	return http.StatusOK, view
}

// HandleList serves GET; search or category query parameters replace the
// filter.
func (h *Handlers[T]) HandleList(w http.ResponseWriter, r *http.Request, session string) {
	var filter *commands.FilterInput
	values := r.URL.Query()
	if values.Has("search") || values.Has("category") {
		filter = &commands.FilterInput{Search: values.Get("search"), Category: values.Get("category")}
	}
	status, body := h.List(r.Context(), session, filter)
	WriteJSON(w, status, body)
}

// HandleBeginDraft serves POST draft.
func (h *Handlers[T]) HandleBeginDraft(w http.ResponseWriter, r *http.Request, session string) {
	h.withBody(w, r, func(body []byte) (int, any) { return h.BeginDraft(r.Context(), session, body) })
}

// HandleUpdateDraft serves PATCH draft.
func (h *Handlers[T]) HandleUpdateDraft(w http.ResponseWriter, r *http.Request, session string) {
	h.withBody(w, r, func(body []byte) (int, any) { return h.UpdateDraft(r.Context(), session, body) })
}

// HandleCommitDraft serves POST draft/commit.
func (h *Handlers[T]) HandleCommitDraft(w http.ResponseWriter, r *http.Request, session string) {
	status, body := h.CommitDraft(r.Context(), session)
	WriteJSON(w, status, body)
}

// HandleCancelDraft serves DELETE draft.
func (h *Handlers[T]) HandleCancelDraft(w http.ResponseWriter, r *http.Request, session string) {
	status, body := h.CancelDraft(r.Context(), session)
	WriteJSON(w, status, body)
}

// HandleRemoveRecord serves DELETE records/:id.
func (h *Handlers[T]) HandleRemoveRecord(w http.ResponseWriter, r *http.Request, session string, id int) {
	status, body := h.RemoveRecord(r.Context(), session, id)
	WriteJSON(w, status, body)
}

// HandleTransitionRecord serves PATCH records/:id.
func (h *Handlers[T]) HandleTransitionRecord(w http.ResponseWriter, r *http.Request, session string, id int) {
	h.withBody(w, r, func(body []byte) (int, any) { return h.TransitionRecord(r.Context(), session, id, body) })
}

func (h *Handlers[T]) withBody(w http.ResponseWriter, r *http.Request, fn func([]byte) (int, any)) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
		return
	}
	status, out := fn(body)
	WriteJSON(w, status, out)
}
