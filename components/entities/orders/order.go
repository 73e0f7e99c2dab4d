// Package orders defines the order record and its collection kind.
package orders

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goliatone/go-admin-console/components/collection"
)

// CollectionName is the collection code used by routes and exports.
const CollectionName = "orders"

// Validation messages shown to the operator.
const (
	MessageIncomplete = "Please fill in all fields correctly."
	MessageTotal      = "Total must be greater than 0."
)

// Draft field names.
const (
	FieldID     = "id"
	FieldUser   = "user"
	FieldDate   = "date"
	FieldStatus = "status"
	FieldTotal  = "total"
)

// Order is a customer order. Its id is supplied by the operator.
type Order struct {
	ID     int     `json:"id" yaml:"id"`
	User   string  `json:"user" yaml:"user"`
	Date   string  `json:"date" yaml:"date"`
	Status Status  `json:"status" yaml:"status"`
	Total  float64 `json:"total" yaml:"total"`
}

// Kind implements collection.Kind for orders.
type Kind struct{}

var (
	_ collection.Kind[Order]    = Kind{}
	_ collection.CategoryLister = Kind{}
)

func (Kind) Name() string { return CollectionName }

func (Kind) Identity(o Order) int { return o.ID }

func (Kind) WithIdentity(o Order, id int) Order {
	o.ID = id
	return o
}

func (Kind) AssignsIdentity() bool { return false }

func (Kind) Fields() []string {
	return []string{FieldID, FieldUser, FieldDate, FieldStatus, FieldTotal}
}

func (Kind) Blank() collection.Draft {
	return collection.Draft{
		FieldID:     "",
		FieldUser:   "",
		FieldDate:   "",
		FieldStatus: string(StatusPending),
		FieldTotal:  "",
	}
}

func (Kind) DraftOf(o Order) collection.Draft {
	return collection.Draft{
		FieldID:     strconv.Itoa(o.ID),
		FieldUser:   o.User,
		FieldDate:   o.Date,
		FieldStatus: string(o.Status),
		FieldTotal:  strconv.FormatFloat(o.Total, 'f', -1, 64),
	}
}

// Build requires id, user, date and a numeric total, then a positive total.
// The id must be a positive integer and the status one of Statuses.
func (Kind) Build(d collection.Draft) (Order, error) {
	user := d.Value(FieldUser)
	date := d.Value(FieldDate)
	id, idErr := strconv.Atoi(d.Value(FieldID))
	total, totalErr := strconv.ParseFloat(d.Value(FieldTotal), 64)
	status, statusOK := ParseStatus(d.Value(FieldStatus))
	if d.Value(FieldStatus) == "" {
		status, statusOK = StatusPending, true
	}
	if idErr != nil || id <= 0 || user == "" || date == "" || totalErr != nil ||
		math.IsNaN(total) || math.IsInf(total, 0) || !statusOK {
		return Order{}, collection.Invalid(MessageIncomplete)
	}
	if total <= 0 {
		return Order{}, collection.Invalid(MessageTotal)
	}
	return Order{
		ID:     id,
		User:   user,
		Date:   date,
		Status: status,
		Total:  total,
	}, nil
}

// SetField supports the status transition.
func (Kind) SetField(o Order, field, value string) (Order, error) {
	if field != FieldStatus {
		return o, fmt.Errorf("%w: %s", collection.ErrUnknownField, field)
	}
	status, ok := ParseStatus(value)
	if !ok {
		return o, fmt.Errorf("%w: status %q", collection.ErrInvalidValue, value)
	}
	o.Status = status
	return o, nil
}

func (Kind) SearchText(o Order) []string {
	return []string{strconv.Itoa(o.ID), o.User}
}

func (Kind) Category(o Order) string { return string(o.Status) }

func (Kind) CategoryOptions() []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (Kind) Row(o Order) collection.Row {
	return collection.Row{
		{Name: FieldID, Value: strconv.Itoa(o.ID)},
		{Name: FieldUser, Value: o.User},
		{Name: FieldDate, Value: o.Date},
		{Name: FieldStatus, Value: string(o.Status)},
		{Name: FieldTotal, Value: strconv.FormatFloat(o.Total, 'f', 2, 64)},
	}
}
