package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desk() *entity.Product {
	return &entity.Product{
		ID:           uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:         "Walnut Desk",
		Price:        499.90,
		MainImageURL: "https://img.example.com/desk.jpg",
	}
}

func lamp() *entity.Product {
	return &entity.Product{
		ID:           uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:         "Desk Lamp",
		Price:        45.50,
		MainImageURL: "https://img.example.com/lamp.jpg",
	}
}

func TestCart_AddMergesByProductID(t *testing.T) {
	c := New()

	c.Add(desk())
	c.Add(lamp())
	c.Add(desk())

	items := c.Items()
	require.Len(t, items, 2, "adding an existing product must merge, not append")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCart_TotalRecomputedPerTransition(t *testing.T) {
	c := New()
	assert.Zero(t, c.Total())

	c.Add(desk())
	assert.InDelta(t, 499.90, c.Total(), 0.001)

	c.Add(lamp())
	c.Add(lamp())
	assert.InDelta(t, 499.90+2*45.50, c.Total(), 0.001)

	c.SetQuantity(lamp().ID, 5)
	assert.InDelta(t, 499.90+5*45.50, c.Total(), 0.001)

	c.Remove(desk().ID)
	assert.InDelta(t, 5*45.50, c.Total(), 0.001)

	c.Clear()
	assert.Zero(t, c.Total())
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantityIgnoresValuesBelowOne(t *testing.T) {
	c := New()
	c.Add(desk())

	c.SetQuantity(desk().ID, 0)
	c.SetQuantity(desk().ID, -3)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCart_SetQuantityUnknownProductIsNoop(t *testing.T) {
	c := New()
	c.Add(desk())

	c.SetQuantity(lamp().ID, 4)

	assert.InDelta(t, 499.90, c.Total(), 0.001)
}

func TestCart_RemoveKeepsOrder(t *testing.T) {
	c := New()
	c.Add(desk())
	c.Add(lamp())

	c.Remove(desk().ID)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Desk Lamp", items[0].Name)
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(desk())

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
