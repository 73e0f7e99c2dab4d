package collection

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

type ticket struct {
	ID     int
	Title  string
	Status string
}

type ticketKind struct {
	selfAssign bool
}

func (ticketKind) Name() string          { return "tickets" }
func (ticketKind) Identity(t ticket) int { return t.ID }
func (ticketKind) WithIdentity(t ticket, id int) ticket {
	t.ID = id
	return t
}
func (k ticketKind) AssignsIdentity() bool { return k.selfAssign }
func (ticketKind) Fields() []string        { return []string{"id", "title", "status"} }
func (ticketKind) Blank() Draft            { return Draft{"id": "", "title": "", "status": "Pending"} }
func (ticketKind) DraftOf(t ticket) Draft {
	return Draft{"id": strconv.Itoa(t.ID), "title": t.Title, "status": t.Status}
}
func (ticketKind) Build(d Draft) (ticket, error) {
	if d.Value("title") == "" {
		return ticket{}, Invalid("Title is required.")
	}
	id, _ := strconv.Atoi(d.Value("id"))
	return ticket{ID: id, Title: d.Value("title"), Status: d.Value("status")}, nil
}
func (ticketKind) SetField(t ticket, field, value string) (ticket, error) {
	if field != "status" {
		return t, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if value == "" {
		return t, ErrInvalidValue
	}
	t.Status = value
	return t, nil
}
func (ticketKind) SearchText(t ticket) []string { return []string{strconv.Itoa(t.ID), t.Title} }
func (ticketKind) Category(t ticket) string     { return t.Status }
func (ticketKind) Row(t ticket) Row {
	return Row{{Name: "id", Value: strconv.Itoa(t.ID)}, {Name: "title", Value: t.Title}}
}

type recordingTelemetry struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingTelemetry) has(event string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == event {
			return true
		}
	}
	return false
}

type recordingHook struct {
	events []ChangeEvent
	err    error
}

func (h *recordingHook) CollectionChanged(_ context.Context, event ChangeEvent) error {
	h.events = append(h.events, event)
	return h.err
}
