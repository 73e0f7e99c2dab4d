package collection

import (
	"context"
	"sync"
)

// Options configures a Collection.
type Options[T any] struct {
	Seed      []T
	IDPolicy  IDPolicy
	Telemetry Telemetry
	Hook      ChangeHook
}

// Collection is the state behind one management page: the record store, the
// edit session and the current filter. Every operation runs under a single
// lock, so callers observe one logical actor.
type Collection[T any] struct {
	kind      Kind[T]
	store     *Store[T]
	session   *Session[T]
	telemetry Telemetry
	hook      ChangeHook

	mu     sync.Mutex
	filter Filter
}

// New builds a collection with safe defaults.
func New[T any](kind Kind[T], opts Options[T]) *Collection[T] {
	telemetry := normalizeTelemetry(opts.Telemetry)
	hook := opts.Hook
	if hook == nil {
		hook = noopChangeHook{}
	}
	store := NewStore(kind, opts.Seed, opts.IDPolicy)
	return &Collection[T]{
		kind:      kind,
		store:     store,
		session:   NewSession(kind, store, telemetry),
		telemetry: telemetry,
		hook:      hook,
	}
}

// Name returns the collection code.
func (c *Collection[T]) Name() string {
	return c.kind.Name()
}

// Kind returns the entity contract backing the collection.
func (c *Collection[T]) Kind() Kind[T] {
	return c.kind
}

// Store exposes the underlying record store.
func (c *Collection[T]) Store() *Store[T] {
	return c.store
}

// Records returns every stored record in insertion order.
func (c *Collection[T]) Records() []T {
	return c.store.All()
}

// SetFilter replaces the current search term and category.
func (c *Collection[T]) SetFilter(filter Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = filter
}

// SetSearch replaces the search term, keeping the category.
func (c *Collection[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Search = term
}

// SetCategory replaces the category, keeping the search term. An empty
// category matches everything.
func (c *Collection[T]) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Category = category
}

// Filter returns the current search term and category.
func (c *Collection[T]) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// List returns the records matching the current filter.
func (c *Collection[T]) List() []T {
	filter := c.Filter()
	return Query(c.kind, c.store.All(), filter.Search, filter.Category)
}

// Categories returns the filter options for the collection.
func (c *Collection[T]) Categories() []string {
	return Categories(c.kind, c.store.All())
}

// State returns the edit session snapshot.
func (c *Collection[T]) State() SessionState {
	return c.session.State()
}

// BeginAdd opens a blank draft.
func (c *Collection[T]) BeginAdd(ctx context.Context) Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.BeginAdd(ctx)
}

// BeginEdit opens a draft copied from the stored record with id. It reports
// false when no record matched.
func (c *Collection[T]) BeginEdit(ctx context.Context, id int) (Draft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record, ok := c.store.Get(id)
	if !ok {
		return nil, false
	}
	return c.session.BeginEdit(ctx, record), true
}

// UpdateField sets one draft field.
func (c *Collection[T]) UpdateField(_ context.Context, field, value string) (Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.UpdateField(field, value)
}

// Commit validates and merges the draft, then notifies the change hook.
func (c *Collection[T]) Commit(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	action := ActionCreate
	if c.session.State().Mode == ModeEditing {
		action = ActionUpdate
	}
	record, stored, err := c.session.commit(ctx)
	if err != nil {
		if IsValidation(err) {
			c.record(ctx, "collection.commit.rejected", map[string]any{"error": err.Error()})
		}
		return record, err
	}
	if !stored {
		return record, nil
	}
	id := c.kind.Identity(record)
	c.record(ctx, "collection.commit."+action, map[string]any{"id": id})
	c.notify(ctx, ChangeEvent{Collection: c.kind.Name(), Action: action, ID: id, Record: record})
	return record, nil
}

// Cancel discards the draft.
func (c *Collection[T]) Cancel(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Cancel(ctx)
}

// Remove deletes the record with id. Unknown ids are a silent no-op.
func (c *Collection[T]) Remove(ctx context.Context, id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.store.Remove(id) {
		return false
	}
	c.record(ctx, "collection.remove", map[string]any{"id": id})
	c.notify(ctx, ChangeEvent{Collection: c.kind.Name(), Action: ActionDelete, ID: id})
	return true
}

// SetField applies a single-field transition without a draft. Unknown ids
// are a silent no-op; unknown fields or values return an error.
func (c *Collection[T]) SetField(ctx context.Context, id int, field, value string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	found, err := c.store.SetField(id, field, value)
	if err != nil || !found {
		return false, err
	}
	c.record(ctx, "collection.transition", map[string]any{"id": id, "field": field, "value": value})
	event := ChangeEvent{Collection: c.kind.Name(), Action: ActionTransition, ID: id, Field: field, Value: value}
	if record, ok := c.store.Get(id); ok {
		event.Record = record
	}
	c.notify(ctx, event)
	return true, nil
}

// Rows flattens every stored record for exporters.
func (c *Collection[T]) Rows() []Row {
	records := c.store.All()
	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = c.kind.Row(record)
	}
	return rows
}

// Columns lists the field names of the kind's flat rows.
func (c *Collection[T]) Columns() []string {
	var zero T
	return c.kind.Row(zero).Names()
}

// Table pairs Columns with Rows.
func (c *Collection[T]) Table() Table {
	return Table{Columns: c.Columns(), Rows: c.Rows()}
}

func (c *Collection[T]) record(ctx context.Context, event string, payload map[string]any) {
	payload["collection"] = c.kind.Name()
	c.telemetry.Record(ctx, event, payload)
}

func (c *Collection[T]) notify(ctx context.Context, event ChangeEvent) {
	if err := c.hook.CollectionChanged(ctx, event); err != nil {
		c.telemetry.Record(ctx, "collection.hook.error", map[string]any{
			"collection": event.Collection,
			"action":     event.Action,
			"error":      err.Error(),
		})
	}
}
