package collection

import "sync"

// IDPolicy selects how the store assigns identifiers to new records.
type IDPolicy int

const (
	// IDFromLength assigns len(records)+1. Ids collide after a deletion
	// (add, add, remove first, add); kept as the default because earlier
	// clients depend on it.
	IDFromLength IDPolicy = iota
	// IDMonotonic assigns one past the highest id the store has ever held.
	IDMonotonic
)

// ParseIDPolicy maps a config value onto an IDPolicy.
func ParseIDPolicy(value string) (IDPolicy, bool) {
	switch value {
	case "", "length":
		return IDFromLength, true
	case "monotonic":
		return IDMonotonic, true
	default:
		return IDFromLength, false
	}
}

func (p IDPolicy) String() string {
	if p == IDMonotonic {
		return "monotonic"
	}
	return "length"
}

// Store owns the ordered, in-memory record set of one entity type. Records
// are kept in insertion order: new records are appended, edits replace in
// place. Lookups by id are linear scans.
type Store[T any] struct {
	kind    Kind[T]
	policy  IDPolicy
	mu      sync.RWMutex
	records []T
	highest int
}

// NewStore builds a store seeded with the given records.
func NewStore[T any](kind Kind[T], seed []T, policy IDPolicy) *Store[T] {
	s := &Store[T]{
		kind:    kind,
		policy:  policy,
		records: make([]T, 0, len(seed)),
	}
	for _, record := range seed {
		s.records = append(s.records, record)
		s.track(kind.Identity(record))
	}
	return s
}

// Add appends the record, assigning an id when the kind self-assigns or the
// record carries none. Externally supplied ids are not checked for
// collisions.
func (s *Store[T]) Add(record T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kind.AssignsIdentity() || s.kind.Identity(record) == 0 {
		record = s.kind.WithIdentity(record, s.nextID())
	}
	s.records = append(s.records, record)
	s.track(s.kind.Identity(record))
	return record
}

// Replace overwrites every record carrying id. It reports false when no
// record matched.
func (s *Store[T]) Replace(id int, record T) bool {
	record = s.kind.WithIdentity(record, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.records {
		if s.kind.Identity(s.records[i]) == id {
			s.records[i] = record
			found = true
		}
	}
	return found
}

// Remove deletes every record carrying id, unconditionally. It reports false
// when no record matched.
func (s *Store[T]) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	removed := false
	for _, record := range s.records {
		if s.kind.Identity(record) == id {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	var zero T
	for i := len(kept); i < len(s.records); i++ {
		s.records[i] = zero
	}
	s.records = kept
	return removed
}

// SetField applies a single-field transition to every record carrying id.
// The bool result is false when no record matched; the error is non-nil when
// the kind rejects the field or value.
func (s *Store[T]) SetField(id int, field, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.records {
		if s.kind.Identity(s.records[i]) != id {
			continue
		}
		updated, err := s.kind.SetField(s.records[i], field, value)
		if err != nil {
			return false, err
		}
		s.records[i] = updated
		found = true
	}
	return found, nil
}

// Get returns the first record carrying id.
func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if s.kind.Identity(record) == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// All returns a snapshot of the records in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) nextID() int {
	if s.policy == IDMonotonic {
		return s.highest + 1
	}
	return len(s.records) + 1
}

func (s *Store[T]) track(id int) {
	if id > s.highest {
		s.highest = id
	}
}
