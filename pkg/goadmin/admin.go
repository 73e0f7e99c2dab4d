package goadmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/pkg/activity"
)

// MenuBuilder ensures console entries exist within the host navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures console link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires console sessions and feature flags into a host admin shell.
type Config struct {
	EnableConsole bool
	MenuCode      string
	MenuBuilder   MenuBuilder
	Sessions      *admin.Sessions
	BasePath      string
	Icons         map[string]string
	ActivityHooks activity.Hooks
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

var defaultIcons = map[string]string{
	"dashboard": "home",
	"products":  "box",
	"orders":    "cart",
	"users":     "users",
	"reports":   "chart",
}

// New creates an Admin helper. When ActivityHooks are set and no sessions
// are given, the helper builds sessions that forward activity to them.
func New(cfg Config) (*Admin, error) {
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/admin"
	}
	if cfg.EnableConsole && cfg.Sessions == nil {
		if len(cfg.ActivityHooks) == 0 {
			return nil, errors.New("goadmin: sessions or activity hooks are required when enabled")
		}
		cfg.Sessions = admin.NewSessions(admin.SessionsOptions{
			Workspace: admin.Options{Activity: cfg.ActivityHooks},
		})
	}
	return &Admin{cfg: cfg}, nil
}

// Sessions exposes the configured console sessions when enabled.
func (a *Admin) Sessions() *admin.Sessions {
	if !a.cfg.EnableConsole {
		return nil
	}
	return a.cfg.Sessions
}

// MenuItems maps the console navigation onto host menu entries.
func (a *Admin) MenuItems() []MenuItem {
	nav := admin.Nav(a.cfg.BasePath)
	items := make([]MenuItem, len(nav))
	for i, entry := range nav {
		icon := defaultIcons[entry.Code]
		if custom, ok := a.cfg.Icons[entry.Code]; ok {
			icon = custom
		}
		items[i] = MenuItem{Label: entry.Label, Route: entry.Path, Icon: icon, Position: i + 1}
	}
	return items
}

// Bootstrap seeds menu entries when the console is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableConsole || a.cfg.MenuBuilder == nil {
		return nil
	}
	for _, item := range a.MenuItems() {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return fmt.Errorf("goadmin: ensure menu item %s: %w", item.Label, err)
		}
	}
	return nil
}
