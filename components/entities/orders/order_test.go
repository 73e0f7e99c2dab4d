package orders

import (
	"context"
	"testing"

	"github.com/goliatone/go-admin-console/components/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *collection.Collection[Order] {
	return collection.New[Order](Kind{}, collection.Options[Order]{
		Seed: []Order{
			{ID: 1, User: "Thanu", Date: "2024-08-12", Status: StatusPending, Total: 89.99},
			{ID: 2, User: "Mathu", Date: "2024-08-12", Status: StatusShipped, Total: 45.50},
		},
	})
}

func fill(t *testing.T, c *collection.Collection[Order], values map[string]string) {
	t.Helper()
	for field, value := range values {
		_, err := c.UpdateField(context.Background(), field, value)
		require.NoError(t, err)
	}
}

func TestCommitRejectsNegativeTotal(t *testing.T) {
	ctx := context.Background()
	c := seeded()
	before := c.Records()

	c.BeginAdd(ctx)
	fill(t, c, map[string]string{FieldID: "3", FieldUser: "Kai", FieldDate: "2024-01-01", FieldTotal: "-5"})
	_, err := c.Commit(ctx)

	require.Error(t, err)
	assert.Equal(t, MessageTotal, err.Error())
	assert.Equal(t, MessageTotal, c.State().Error)
	assert.Equal(t, before, c.Records())
}

func TestCommitKeepsSuppliedID(t *testing.T) {
	ctx := context.Background()
	c := seeded()

	c.BeginAdd(ctx)
	fill(t, c, map[string]string{FieldID: "10", FieldUser: "Kai", FieldDate: "2024-01-01", FieldTotal: "12.5"})
	order, err := c.Commit(ctx)

	require.NoError(t, err)
	assert.Equal(t, Order{ID: 10, User: "Kai", Date: "2024-01-01", Status: StatusPending, Total: 12.5}, order)
}

func TestBuildIncomplete(t *testing.T) {
	base := map[string]string{FieldID: "3", FieldUser: "Kai", FieldDate: "2024-01-01", FieldStatus: "Pending", FieldTotal: "5"}
	cases := map[string]map[string]string{
		"missing user":   {FieldUser: ""},
		"missing date":   {FieldDate: " "},
		"zero id":        {FieldID: "0"},
		"text id":        {FieldID: "three"},
		"text total":     {FieldTotal: "five"},
		"unknown status": {FieldStatus: "Lost"},
	}
	for name, override := range cases {
		t.Run(name, func(t *testing.T) {
			draft := collection.Draft{}
			for k, v := range base {
				draft[k] = v
			}
			for k, v := range override {
				draft[k] = v
			}

			_, err := Kind{}.Build(draft)

			require.Error(t, err)
			assert.Equal(t, MessageIncomplete, err.Error())
		})
	}
}

func TestEditKeepsSourceID(t *testing.T) {
	ctx := context.Background()
	c := seeded()

	_, ok := c.BeginEdit(ctx, 2)
	require.True(t, ok)
	fill(t, c, map[string]string{FieldID: "9", FieldTotal: "50"})
	order, err := c.Commit(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, order.ID)
	assert.Equal(t, []int{1, 2}, []int{c.Records()[0].ID, c.Records()[1].ID})
	assert.Equal(t, 50.0, c.Records()[1].Total)
}

func TestStatusTransition(t *testing.T) {
	ctx := context.Background()
	c := seeded()

	changed, err := c.SetField(ctx, 1, FieldStatus, "Delivered")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StatusDelivered, c.Records()[0].Status)

	_, err = c.SetField(ctx, 1, FieldStatus, "Lost")
	assert.ErrorIs(t, err, collection.ErrInvalidValue)

	_, err = c.SetField(ctx, 1, FieldTotal, "1")
	assert.ErrorIs(t, err, collection.ErrUnknownField)
}

func TestFilterByIDAndStatus(t *testing.T) {
	c := seeded()

	c.SetFilter(collection.Filter{Search: "2"})
	require.Len(t, c.List(), 1)
	assert.Equal(t, "Mathu", c.List()[0].User)

	c.SetFilter(collection.Filter{Category: "Shipped"})
	assert.Len(t, c.List(), 1)

	assert.Equal(t, []string{"Pending", "Shipped", "Delivered", "Cancelled"}, c.Categories())
}
