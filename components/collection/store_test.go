package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddAssignsLengthPlusOne(t *testing.T) {
	store := NewStore[ticket](ticketKind{selfAssign: true}, []ticket{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, IDFromLength)

	added := store.Add(ticket{Title: "c"})

	assert.Equal(t, 3, added.ID)
	assert.Equal(t, []int{1, 2, 3}, ids(store.All()))
}

func TestStoreLengthPolicyCollidesAfterDelete(t *testing.T) {
	store := NewStore[ticket](ticketKind{selfAssign: true}, nil, IDFromLength)
	store.Add(ticket{Title: "a"})
	store.Add(ticket{Title: "b"})
	require.True(t, store.Remove(1))

	added := store.Add(ticket{Title: "c"})

	assert.Equal(t, 2, added.ID)
	assert.Equal(t, []int{2, 2}, ids(store.All()))
}

func TestStoreMonotonicPolicyNeverReuses(t *testing.T) {
	store := NewStore[ticket](ticketKind{selfAssign: true}, nil, IDMonotonic)
	store.Add(ticket{Title: "a"})
	store.Add(ticket{Title: "b"})
	store.Remove(1)

	added := store.Add(ticket{Title: "c"})

	assert.Equal(t, 3, added.ID)
}

func TestStoreKeepsSuppliedID(t *testing.T) {
	store := NewStore[ticket](ticketKind{}, nil, IDFromLength)

	added := store.Add(ticket{ID: 42, Title: "a"})

	assert.Equal(t, 42, added.ID)
}

func TestStoreReplaceInPlace(t *testing.T) {
	store := NewStore[ticket](ticketKind{}, []ticket{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 3, Title: "c"}}, IDFromLength)

	assert.True(t, store.Replace(2, ticket{ID: 99, Title: "B"}))
	assert.False(t, store.Replace(7, ticket{Title: "x"}))

	all := store.All()
	assert.Equal(t, []int{1, 2, 3}, ids(all))
	assert.Equal(t, "B", all[1].Title)
}

func TestStoreSetFieldAndRemoveScenario(t *testing.T) {
	store := NewStore[ticket](ticketKind{}, []ticket{{ID: 1, Status: "Pending"}}, IDFromLength)

	found, err := store.SetField(1, "status", "Shipped")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []ticket{{ID: 1, Status: "Shipped"}}, store.All())

	assert.True(t, store.Remove(1))
	assert.Empty(t, store.All())

	assert.False(t, store.Remove(1))
	assert.Empty(t, store.All())
}

func TestStoreSetFieldUnknownIDIsNoop(t *testing.T) {
	store := NewStore[ticket](ticketKind{}, []ticket{{ID: 1, Status: "Pending"}}, IDFromLength)

	found, err := store.SetField(5, "status", "Shipped")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "Pending", store.All()[0].Status)
}

func TestStoreSetFieldRejectsUnknownField(t *testing.T) {
	store := NewStore[ticket](ticketKind{}, []ticket{{ID: 1, Status: "Pending"}}, IDFromLength)

	_, err := store.SetField(1, "title", "x")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStoreAllIsSnapshot(t *testing.T) {
	store := NewStore[ticket](ticketKind{}, []ticket{{ID: 1, Title: "a"}}, IDFromLength)

	snapshot := store.All()
	snapshot[0].Title = "mutated"

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)
}

func TestParseIDPolicy(t *testing.T) {
	p, ok := ParseIDPolicy("monotonic")
	assert.True(t, ok)
	assert.Equal(t, IDMonotonic, p)

	p, ok = ParseIDPolicy("")
	assert.True(t, ok)
	assert.Equal(t, IDFromLength, p)

	_, ok = ParseIDPolicy("random")
	assert.False(t, ok)
}

func ids(records []ticket) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
