package admin

import (
	"context"

	"github.com/goliatone/go-admin-console/components/admin/commands"
	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/goliatone/go-admin-console/components/entities/orders"
	"github.com/goliatone/go-admin-console/components/entities/products"
	"github.com/goliatone/go-admin-console/components/entities/users"
)

// ProductsResolver resolves the products page of a session.
func (s *Sessions) ProductsResolver() commands.Resolver[products.Product] {
	return pageResolver(s, func(w *Workspace) *collection.Collection[products.Product] { return w.Products })
}

// OrdersResolver resolves the orders page of a session.
func (s *Sessions) OrdersResolver() commands.Resolver[orders.Order] {
	return pageResolver(s, func(w *Workspace) *collection.Collection[orders.Order] { return w.Orders })
}

// UsersResolver resolves the users page of a session.
func (s *Sessions) UsersResolver() commands.Resolver[users.User] {
	return pageResolver(s, func(w *Workspace) *collection.Collection[users.User] { return w.Users })
}

func pageResolver[T any](s *Sessions, pick func(*Workspace) *collection.Collection[T]) commands.Resolver[T] {
	return func(_ context.Context, session string) (*collection.Collection[T], error) {
		workspace, err := s.Get(session)
		if err != nil {
			return nil, err
		}
		return pick(workspace), nil
	}
}
