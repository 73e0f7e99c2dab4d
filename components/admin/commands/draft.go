package commands

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/goliatone/go-admin-console/components/collection"
)

// BeginDraftInput opens a draft. ID zero starts a new record; any other id
// edits the stored record.
type BeginDraftInput struct {
	Session string `json:"-"`
	ID      int    `json:"id"`
}

// BeginDraftCommand opens the page's edit session.
type BeginDraftCommand[T any] struct {
	resolve   Resolver[T]
	telemetry Telemetry
}

// NewBeginDraftCommand builds the command.
func NewBeginDraftCommand[T any](resolve Resolver[T], telemetry Telemetry) *BeginDraftCommand[T] {
	return &BeginDraftCommand[T]{resolve: resolve, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[BeginDraftInput] = (*BeginDraftCommand[int])(nil)

// Execute opens a blank or copied draft. Editing an unknown id returns
// ErrNotFound and leaves the session as it was.
func (c *BeginDraftCommand[T]) Execute(ctx context.Context, msg BeginDraftInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	mode := collection.ModeAdding
	if msg.ID == 0 {
		page.BeginAdd(ctx)
	} else {
		if _, ok := page.BeginEdit(ctx, msg.ID); !ok {
			return ErrNotFound
		}
		mode = collection.ModeEditing
	}
	c.telemetry.Record(ctx, "admin.draft.begin", map[string]any{
		"collection": page.Name(),
		"mode":       string(mode),
		"id":         msg.ID,
	})
	return nil
}

// UpdateDraftInput sets one draft field.
type UpdateDraftInput struct {
	Session string `json:"-"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// UpdateDraftCommand edits the open draft.
type UpdateDraftCommand[T any] struct {
	resolve Resolver[T]
}

// NewUpdateDraftCommand builds the command.
func NewUpdateDraftCommand[T any](resolve Resolver[T]) *UpdateDraftCommand[T] {
	return &UpdateDraftCommand[T]{resolve: resolve}
}

var _ gocommand.Commander[UpdateDraftInput] = (*UpdateDraftCommand[int])(nil)

// Execute sets msg.Field on the draft.
func (c *UpdateDraftCommand[T]) Execute(ctx context.Context, msg UpdateDraftInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	_, err = page.UpdateField(ctx, msg.Field, msg.Value)
	return err
}

// SessionInput addresses a page by session only.
type SessionInput struct {
	Session string `json:"-"`
}

// CommitDraftCommand validates and merges the open draft.
type CommitDraftCommand[T any] struct {
	resolve   Resolver[T]
	telemetry Telemetry
}

// NewCommitDraftCommand builds the command.
func NewCommitDraftCommand[T any](resolve Resolver[T], telemetry Telemetry) *CommitDraftCommand[T] {
	return &CommitDraftCommand[T]{resolve: resolve, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SessionInput] = (*CommitDraftCommand[int])(nil)

// Execute commits the draft. Validation failures come back as
// *collection.ValidationError with the draft still open.
func (c *CommitDraftCommand[T]) Execute(ctx context.Context, msg SessionInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	if _, err := page.Commit(ctx); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.draft.commit", map[string]any{"collection": page.Name()})
	return nil
}

// CancelDraftCommand discards the open draft.
type CancelDraftCommand[T any] struct {
	resolve Resolver[T]
}

// NewCancelDraftCommand builds the command.
func NewCancelDraftCommand[T any](resolve Resolver[T]) *CancelDraftCommand[T] {
	return &CancelDraftCommand[T]{resolve: resolve}
}

var _ gocommand.Commander[SessionInput] = (*CancelDraftCommand[int])(nil)

// Execute cancels the draft.
func (c *CancelDraftCommand[T]) Execute(ctx context.Context, msg SessionInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	page.Cancel(ctx)
	return nil
}
