// Package admin owns the per-operator workspace: the product, order and user
// collections, their activity feed and the dashboard summary.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/goliatone/go-admin-console/components/entities/orders"
	"github.com/goliatone/go-admin-console/components/entities/products"
	"github.com/goliatone/go-admin-console/components/entities/users"
	"github.com/goliatone/go-admin-console/pkg/activity"
)

// ErrUnknownCollection is returned for collection codes other than products,
// orders and users.
var ErrUnknownCollection = errors.New("admin: unknown collection")

// Options configures a Workspace.
type Options struct {
	ID        string
	Seed      *Seed
	IDPolicy  collection.IDPolicy
	Telemetry Telemetry
	// Activity receives every mutation in addition to the workspace feed.
	Activity activity.Hooks
	// Broadcast, when set, also receives every change stamped with ID.
	Broadcast *collection.BroadcastHook
	Now       func() time.Time
}

// Workspace is the state of one operator session.
type Workspace struct {
	ID       string
	Products *collection.Collection[products.Product]
	Orders   *collection.Collection[orders.Order]
	Users    *collection.Collection[users.User]

	broadcast *collection.BroadcastHook
	feed      *activity.Feed
	startedAt time.Time
}

// NewWorkspace builds a workspace seeded from opts.Seed, or the embedded
// sample records when nil.
func NewWorkspace(opts Options) *Workspace {
	seed := opts.Seed
	if seed == nil {
		defaults := DefaultSeed()
		seed = &defaults
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	telemetry := normalizeTelemetry(opts.Telemetry)
	feed := activity.NewFeed(0)
	hooks := append(activity.Hooks{feed}, opts.Activity...)
	broadcast := collection.NewBroadcastHook()
	hook := collection.ChangeHooks{
		activityHook{emitter: activity.NewEmitter(hooks, activity.Config{Enabled: true}), actor: opts.ID, now: now},
		broadcast,
	}
	if opts.Broadcast != nil {
		hook = append(hook, collection.Scoped(opts.ID, opts.Broadcast))
	}

	return &Workspace{
		ID: opts.ID,
		Products: collection.New[products.Product](products.Kind{}, collection.Options[products.Product]{
			Seed: seed.Products, IDPolicy: opts.IDPolicy, Telemetry: telemetry, Hook: hook,
		}),
		Orders: collection.New[orders.Order](orders.Kind{}, collection.Options[orders.Order]{
			Seed: seed.Orders, IDPolicy: opts.IDPolicy, Telemetry: telemetry, Hook: hook,
		}),
		Users: collection.New[users.User](users.Kind{}, collection.Options[users.User]{
			Seed: seed.Users, IDPolicy: opts.IDPolicy, Telemetry: telemetry, Hook: hook,
		}),
		broadcast: broadcast,
		feed:      feed,
		startedAt: now(),
	}
}

// Broadcast streams change events of every collection in the workspace.
func (w *Workspace) Broadcast() *collection.BroadcastHook {
	return w.broadcast
}

// Feed returns the workspace activity feed.
func (w *Workspace) Feed() *activity.Feed {
	return w.feed
}

// StartedAt is when the workspace was created.
func (w *Workspace) StartedAt() time.Time {
	return w.startedAt
}

// Table flattens the named collection for export.
func (w *Workspace) Table(name string) (collection.Table, error) {
	switch name {
	case products.CollectionName:
		return w.Products.Table(), nil
	case orders.CollectionName:
		return w.Orders.Table(), nil
	case users.CollectionName:
		return w.Users.Table(), nil
	default:
		return collection.Table{}, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
}

type activityHook struct {
	emitter *activity.Emitter
	actor   string
	now     func() time.Time
}

func (h activityHook) CollectionChanged(ctx context.Context, event collection.ChangeEvent) error {
	var meta map[string]any
	if event.Field != "" {
		meta = map[string]any{"field": event.Field, "value": event.Value}
	}
	return h.emitter.Emit(ctx, activity.Event{
		Verb:       event.Action,
		ActorID:    h.actor,
		ObjectType: event.Collection,
		ObjectID:   strconv.Itoa(event.ID),
		Metadata:   meta,
		OccurredAt: h.now(),
	})
}
