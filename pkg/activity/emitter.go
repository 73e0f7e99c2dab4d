package activity

import (
	"context"
	"strings"
)

const defaultChannel = "admin"

// Config toggles activity emission.
type Config struct {
	Enabled bool
	Channel string
}

// Emitter stamps the configured channel on events and forwards them to hooks.
type Emitter struct {
	hooks   Hooks
	channel string
	enabled bool
}

// NewEmitter builds an emitter. It is disabled when no hooks are given.
func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	channel := strings.TrimSpace(cfg.Channel)
	if channel == "" {
		channel = defaultChannel
	}
	return &Emitter{
		hooks:   hooks,
		channel: channel,
		enabled: cfg.Enabled && len(hooks) > 0,
	}
}

// Enabled reports whether Emit delivers events.
func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled
}

// Emit sends evt to every hook.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if !e.Enabled() {
		return nil
	}
	if strings.TrimSpace(evt.Channel) == "" {
		evt.Channel = e.channel
	}
	return e.hooks.Notify(ctx, evt)
}
