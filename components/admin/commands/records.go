package commands

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/goliatone/go-admin-console/components/collection"
)

// RemoveRecordInput identifies the record to delete.
type RemoveRecordInput struct {
	Session string `json:"-"`
	ID      int    `json:"id"`
}

// RemoveRecordCommand deletes a record without confirmation.
type RemoveRecordCommand[T any] struct {
	resolve   Resolver[T]
	telemetry Telemetry
}

// NewRemoveRecordCommand builds the command.
func NewRemoveRecordCommand[T any](resolve Resolver[T], telemetry Telemetry) *RemoveRecordCommand[T] {
	return &RemoveRecordCommand[T]{resolve: resolve, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RemoveRecordInput] = (*RemoveRecordCommand[int])(nil)

// Execute removes msg.ID, returning ErrNotFound when nothing matched.
func (c *RemoveRecordCommand[T]) Execute(ctx context.Context, msg RemoveRecordInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	if !page.Remove(ctx, msg.ID) {
		return ErrNotFound
	}
	c.telemetry.Record(ctx, "admin.record.remove", map[string]any{"collection": page.Name(), "id": msg.ID})
	return nil
}

// TransitionInput changes one field of a stored record.
type TransitionInput struct {
	Session string `json:"-"`
	ID      int    `json:"id"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// TransitionCommand applies order status and user role changes.
type TransitionCommand[T any] struct {
	resolve   Resolver[T]
	telemetry Telemetry
}

// NewTransitionCommand builds the command.
func NewTransitionCommand[T any](resolve Resolver[T], telemetry Telemetry) *TransitionCommand[T] {
	return &TransitionCommand[T]{resolve: resolve, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[TransitionInput] = (*TransitionCommand[int])(nil)

// Execute sets msg.Field on the record, returning ErrNotFound when no record
// has msg.ID.
func (c *TransitionCommand[T]) Execute(ctx context.Context, msg TransitionInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	changed, err := page.SetField(ctx, msg.ID, msg.Field, msg.Value)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFound
	}
	c.telemetry.Record(ctx, "admin.record.transition", map[string]any{
		"collection": page.Name(),
		"id":         msg.ID,
		"field":      msg.Field,
		"value":      msg.Value,
	})
	return nil
}

// FilterInput replaces the page's search term and category.
type FilterInput struct {
	Session  string `json:"-"`
	Search   string `json:"search"`
	Category string `json:"category"`
}

// SetFilterCommand updates the page filter.
type SetFilterCommand[T any] struct {
	resolve Resolver[T]
}

// NewSetFilterCommand builds the command.
func NewSetFilterCommand[T any](resolve Resolver[T]) *SetFilterCommand[T] {
	return &SetFilterCommand[T]{resolve: resolve}
}

var _ gocommand.Commander[FilterInput] = (*SetFilterCommand[int])(nil)

// Execute stores the filter.
func (c *SetFilterCommand[T]) Execute(ctx context.Context, msg FilterInput) error {
	page, err := resolve(ctx, c.resolve, msg.Session)
	if err != nil {
		return err
	}
	page.SetFilter(collection.Filter{Search: msg.Search, Category: msg.Category})
	return nil
}
