package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "admin_console"

// Prometheus counts events by name and collection.
type Prometheus struct {
	events *prometheus.CounterVec
}

// NewPrometheus registers the event counter on reg. A nil reg uses the
// default registerer.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Admin console events by name and collection",
		},
		[]string{"event", "collection"},
	)
	if err := reg.Register(events); err != nil {
		return nil, fmt.Errorf("telemetry: register events counter: %w", err)
	}
	return &Prometheus{events: events}, nil
}

// Record increments the counter for event.
func (p *Prometheus) Record(_ context.Context, event string, payload map[string]any) {
	collection, _ := payload["collection"].(string)
	p.events.WithLabelValues(event, collection).Inc()
}
