package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/collection"
)

type workspaceSource interface {
	Get(id string) (*admin.Workspace, error)
}

// TilesInput addresses a session dashboard.
type TilesInput struct {
	Session string
}

// TilesQuery returns the dashboard summary tiles.
type TilesQuery struct {
	sessions workspaceSource
}

// NewTilesQuery builds the query.
func NewTilesQuery(sessions workspaceSource) *TilesQuery {
	return &TilesQuery{sessions: sessions}
}

var _ gocommand.Querier[TilesInput, []admin.Tile] = (*TilesQuery)(nil)

// Query computes the tiles of the session workspace.
func (q *TilesQuery) Query(_ context.Context, input TilesInput) ([]admin.Tile, error) {
	workspace, err := q.sessions.Get(input.Session)
	if err != nil {
		return nil, err
	}
	return workspace.Tiles(), nil
}

// TableInput selects a collection to export.
type TableInput struct {
	Session    string
	Collection string
}

// TableQuery flattens a collection into columns and ordered rows for
// exporters.
type TableQuery struct {
	sessions workspaceSource
}

// NewTableQuery builds the query.
func NewTableQuery(sessions workspaceSource) *TableQuery {
	return &TableQuery{sessions: sessions}
}

var _ gocommand.Querier[TableInput, collection.Table] = (*TableQuery)(nil)

// Query returns every record of the collection, unfiltered.
func (q *TableQuery) Query(_ context.Context, input TableInput) (collection.Table, error) {
	workspace, err := q.sessions.Get(input.Session)
	if err != nil {
		return collection.Table{}, err
	}
	return workspace.Table(input.Collection)
}
