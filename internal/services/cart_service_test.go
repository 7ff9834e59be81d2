package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"markethub/internal/models"
	"markethub/internal/services"
)

func headphones() models.Product {
	return models.Product{ID: 1, Name: "Беспроводные наушники", Price: 4990, Category: "Электроника", Image: "/placeholder.svg", Rating: 4.8, Reviews: 234, Seller: "TechStore"}
}

func watch() models.Product {
	return models.Product{ID: 2, Name: "Умные часы", Price: 8990, Category: "Электроника", Image: "/placeholder.svg", Rating: 4.6, Reviews: 189, Seller: "GadgetPro"}
}

func TestCartService_AddItemMergesByID(t *testing.T) {
	cart := services.NewCartService()

	cart.AddItem(headphones())
	cart.AddItem(headphones())
	cart.AddItem(headphones())

	items := cart.Items()
	assert.Len(t, items, 1, "repeated adds of the same product must not duplicate the line")
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_AddItemPreservesOrder(t *testing.T) {
	cart := services.NewCartService()

	cart.AddItem(headphones())
	cart.AddItem(watch())
	cart.AddItem(headphones()) // merge must keep headphones in first position

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestCartService_AddItemSnapshotsProduct(t *testing.T) {
	cart := services.NewCartService()

	product := headphones()
	cart.AddItem(product)

	// A later change to the caller's product must not leak into the cart.
	product.Price = 1
	product.Name = "changed"

	items := cart.Items()
	assert.Equal(t, 4990, items[0].Price)
	assert.Equal(t, "Беспроводные наушники", items[0].Name)
}

func TestCartService_RemoveItemIsIdempotent(t *testing.T) {
	cart := services.NewCartService()
	cart.AddItem(headphones())
	cart.AddItem(watch())

	err := cart.RemoveItem(1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items(), 1)

	// Second remove is a no-op reported as not found; cart unchanged.
	err = cart.RemoveItem(1)
	assert.ErrorIs(t, err, services.ErrItemNotFound)
	assert.Len(t, cart.Items(), 1)
	assert.Equal(t, 2, cart.Items()[0].ID)
}

func TestCartService_SetQuantity(t *testing.T) {
	cart := services.NewCartService()
	cart.AddItem(headphones())
	cart.AddItem(watch())

	err := cart.SetQuantity(2, 5)
	assert.NoError(t, err)

	items := cart.Items()
	assert.Equal(t, 5, items[1].Quantity)
	assert.Equal(t, 2, items[1].ID, "update must keep the line's position")
	assert.Equal(t, 1, items[0].Quantity, "unrelated lines must stay untouched")
}

func TestCartService_SetQuantityZeroRemoves(t *testing.T) {
	cart := services.NewCartService()
	cart.AddItem(headphones())

	err := cart.SetQuantity(1, 0)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items(), "quantity 0 must behave exactly like remove")

	cart.AddItem(headphones())
	err = cart.SetQuantity(1, -3)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items())
}

func TestCartService_SetQuantityAbsentIDIsNoOp(t *testing.T) {
	cart := services.NewCartService()
	cart.AddItem(headphones())

	err := cart.SetQuantity(99, 4)
	assert.ErrorIs(t, err, services.ErrItemNotFound)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity, "SetQuantity must never create a line")
}

func TestCartService_TotalAndCount(t *testing.T) {
	cart := services.NewCartService()
	assert.Equal(t, 0, cart.Total())
	assert.Equal(t, 0, cart.Count())

	cart.AddItem(headphones())
	cart.AddItem(headphones())
	cart.AddItem(watch())

	assert.Equal(t, 4990*2+8990, cart.Total())
	assert.Equal(t, 18970, cart.Total())
	assert.Equal(t, 3, cart.Count())
	assert.Len(t, cart.Items(), 2)
}

func TestCartService_CountSumsQuantities(t *testing.T) {
	cart := services.NewCartService()
	cart.AddItem(headphones())
	assert.NoError(t, cart.SetQuantity(1, 2))
	cart.AddItem(watch())
	assert.NoError(t, cart.SetQuantity(2, 3))

	assert.Equal(t, 5, cart.Count(), "badge count sums units across lines")
	assert.Len(t, cart.Items(), 2, "while the cart holds two distinct lines")
}

func TestCartService_InvariantsAfterMixedMutations(t *testing.T) {
	cart := services.NewCartService()
	cart.AddItem(headphones())
	cart.AddItem(watch())
	cart.AddItem(headphones())
	assert.NoError(t, cart.SetQuantity(2, 7))
	assert.NoError(t, cart.RemoveItem(1))
	cart.AddItem(headphones())

	seen := make(map[int]bool)
	for _, item := range cart.Items() {
		assert.False(t, seen[item.ID], "no two lines may share a product id")
		seen[item.ID] = true
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}
