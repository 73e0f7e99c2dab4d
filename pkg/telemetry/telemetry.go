// Package telemetry provides Record sinks shared by the admin components:
// structured zap logging, prometheus counters and a fan-out.
package telemetry

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Recorder matches the Telemetry interface consumed by the collection and
// admin packages.
type Recorder interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// Multi fans a record out to every non-nil recorder.
type Multi []Recorder

// Record forwards to each recorder.
func (m Multi) Record(ctx context.Context, event string, payload map[string]any) {
	for _, r := range m {
		if r != nil {
			r.Record(ctx, event, payload)
		}
	}
}

// Zap logs each event at info level with the payload as key/value pairs.
type Zap struct {
	logger *zap.SugaredLogger
}

// NewZap wraps logger. A nil logger yields a no-op sink.
func NewZap(logger *zap.SugaredLogger) *Zap {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Zap{logger: logger}
}

// Record logs event. Session transitions go to debug, failures to warn.
func (z *Zap) Record(_ context.Context, event string, payload map[string]any) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		fields = append(fields, k, payload[k])
	}
	switch {
	case strings.HasSuffix(event, ".error"):
		z.logger.Warnw(event, fields...)
	case strings.HasPrefix(event, "collection.session."):
		z.logger.Debugw(event, fields...)
	default:
		z.logger.Infow(event, fields...)
	}
}

// NewLogger builds a zap logger at level ("debug", "info", "warn",
// "error"). format "console" selects the development encoder; anything else
// logs JSON. Unknown levels fall back to info.
func NewLogger(level, format string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil || level == "" {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
