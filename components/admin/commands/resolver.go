// Package commands wraps the collection operations as go-command Commanders
// so transports can drive a session's pages without linking against the
// workspace.
package commands

import (
	"context"
	"errors"

	"github.com/goliatone/go-admin-console/components/collection"
)

var (
	// ErrNotFound marks an operation whose record id matched nothing. The
	// store is unchanged and transports report a no-op.
	ErrNotFound = errors.New("commands: record not found")
	// ErrNoResolver is returned when a command was built without a resolver.
	ErrNoResolver = errors.New("commands: resolver is required")
)

// Resolver finds the collection of type T for a session.
type Resolver[T any] func(ctx context.Context, session string) (*collection.Collection[T], error)

func resolve[T any](ctx context.Context, r Resolver[T], session string) (*collection.Collection[T], error) {
	if r == nil {
		return nil, ErrNoResolver
	}
	return r(ctx, session)
}
