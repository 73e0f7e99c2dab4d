// Package queries exposes read models of a session's pages as go-command
// Queriers.
package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/goliatone/go-admin-console/components/admin/commands"
	"github.com/goliatone/go-admin-console/components/collection"
)

// PageInput addresses a collection page of a session.
type PageInput struct {
	Session string
}

// PageView is everything a management page renders: the filtered records,
// the filter and its options, and the edit session.
type PageView[T any] struct {
	Collection string                  `json:"collection"`
	Records    []T                     `json:"records"`
	Filter     collection.Filter       `json:"filter"`
	Categories []string                `json:"categories"`
	Session    collection.SessionState `json:"session"`
}

// PageQuery builds a PageView.
type PageQuery[T any] struct {
	resolve commands.Resolver[T]
}

// NewPageQuery builds the query.
func NewPageQuery[T any](resolve commands.Resolver[T]) *PageQuery[T] {
	return &PageQuery[T]{resolve: resolve}
}

var _ gocommand.Querier[PageInput, PageView[int]] = (*PageQuery[int])(nil)

// Query snapshots the page.
func (q *PageQuery[T]) Query(ctx context.Context, input PageInput) (PageView[T], error) {
	if q.resolve == nil {
		return PageView[T]{}, commands.ErrNoResolver
	}
	page, err := q.resolve(ctx, input.Session)
	if err != nil {
		return PageView[T]{}, err
	}
	return PageView[T]{
		Collection: page.Name(),
		Records:    page.List(),
		Filter:     page.Filter(),
		Categories: page.Categories(),
		Session:    page.State(),
	}, nil
}
