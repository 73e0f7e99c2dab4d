package collection

import "strings"

// Kind describes how one entity type behaves inside a collection: identity,
// draft templates, validation, filtering and export.
type Kind[T any] interface {
	// Name is the collection code (e.g. "products").
	Name() string
	// Identity returns the record identifier.
	Identity(record T) int
	// WithIdentity returns a copy of record carrying id.
	WithIdentity(record T, id int) T
	// AssignsIdentity reports whether the store assigns ids on Add.
	AssignsIdentity() bool
	// Fields lists the draft fields accepted by UpdateField, in form order.
	Fields() []string
	// Blank returns the empty-value draft template.
	Blank() Draft
	// DraftOf copies a stored record into a draft.
	DraftOf(record T) Draft
	// Build validates a draft and converts it into a record. Failures are
	// reported as *ValidationError.
	Build(draft Draft) (T, error)
	// SetField applies a single-field transition (status, role).
	SetField(record T, field, value string) (T, error)
	// SearchText returns the free-text fields matched by Query.
	SearchText(record T) []string
	// Category returns the categorical field matched by Query.
	Category(record T) string
	// Row flattens the record for exporters.
	Row(record T) Row
}

// CategoryLister is implemented by kinds with a fixed set of filter options.
type CategoryLister interface {
	CategoryOptions() []string
}

// Draft holds the raw, uncommitted form values of a record under edit.
type Draft map[string]string

// Clone returns an independent copy of the draft.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Value returns the trimmed value for field.
func (d Draft) Value(field string) string {
	return strings.TrimSpace(d[field])
}

// Field is a single printable column in a Row.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Row is an ordered mapping from field name to printable value.
type Row []Field

// Table is a collection flattened for export. Columns hold even when Rows
// is empty.
type Table struct {
	Columns []string
	Rows    []Row
}

// Names returns the column names in order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the value stored under name.
func (r Row) Lookup(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func hasField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
