// Package console is the import surface for hosts that embed the admin
// console without reaching into components/.
package console

import (
	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/admin/gorouter"
)

// Sessions exposes the underlying components/admin.Sessions type.
type Sessions = admin.Sessions

// Options re-export for convenience.
type Options = admin.SessionsOptions

// RouteConfig re-exports the route layout.
type RouteConfig = gorouter.RouteConfig

// NewSessions proxies to the internal constructor.
func NewSessions(opts Options) *Sessions {
	return admin.NewSessions(opts)
}
