package goadmin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/pkg/activity"
	"github.com/goliatone/go-admin-console/pkg/goadmin"
)

type stubMenuBuilder struct {
	items []goadmin.MenuItem
	codes []string
	err   error
}

func (s *stubMenuBuilder) EnsureMenuItem(_ context.Context, code string, item goadmin.MenuItem) error {
	if s.err != nil {
		return s.err
	}
	s.codes = append(s.codes, code)
	s.items = append(s.items, item)
	return nil
}

func TestAdminBootstrapSeedsMenu(t *testing.T) {
	builder := &stubMenuBuilder{}
	sessions := admin.NewSessions(admin.SessionsOptions{})
	a, err := goadmin.New(goadmin.Config{
		EnableConsole: true,
		Sessions:      sessions,
		MenuBuilder:   builder,
		BasePath:      "/console",
		Icons:         map[string]string{"orders": "truck"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := a.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 5 {
		t.Fatalf("expected 5 menu items, got %d", len(builder.items))
	}
	if builder.codes[0] != "admin.main" {
		t.Fatalf("expected default menu code, got %q", builder.codes[0])
	}
	orders := builder.items[2]
	if orders.Label != "Orders" || orders.Route != "/console/orders" || orders.Icon != "truck" || orders.Position != 3 {
		t.Fatalf("unexpected orders item: %+v", orders)
	}
	if builder.items[0].Icon != "home" {
		t.Fatalf("expected default dashboard icon, got %q", builder.items[0].Icon)
	}
	if a.Sessions() != sessions {
		t.Fatalf("expected configured sessions")
	}
}

func TestAdminDisabledSkipsBootstrap(t *testing.T) {
	builder := &stubMenuBuilder{}
	a, err := goadmin.New(goadmin.Config{MenuBuilder: builder})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := a.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 0 {
		t.Fatalf("expected no calls, got %d", len(builder.items))
	}
	if a.Sessions() != nil {
		t.Fatalf("expected nil sessions when disabled")
	}
}

func TestAdminRequiresSessionsOrHooks(t *testing.T) {
	if _, err := goadmin.New(goadmin.Config{EnableConsole: true}); err == nil {
		t.Fatalf("expected error without sessions")
	}
}

func TestAdminBuildsSessionsFromActivityHooks(t *testing.T) {
	capture := &activity.CaptureHook{}
	a, err := goadmin.New(goadmin.Config{
		EnableConsole: true,
		ActivityHooks: activity.Hooks{capture},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()
	ws := a.Sessions().Create(ctx)
	if !ws.Orders.Remove(ctx, 1) {
		t.Fatalf("expected order 1 to be removed")
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected 1 forwarded activity event, got %d", len(capture.Events))
	}
}

func TestAdminBootstrapWrapsBuilderError(t *testing.T) {
	boom := errors.New("boom")
	a, err := goadmin.New(goadmin.Config{
		EnableConsole: true,
		Sessions:      admin.NewSessions(admin.SessionsOptions{}),
		MenuBuilder:   &stubMenuBuilder{err: boom},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := a.Bootstrap(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped builder error, got %v", err)
	}
}
