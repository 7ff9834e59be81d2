package repositories

import (
	"fmt"
	"sync"

	"markethub/internal/models"
)

// MemoryCatalogRepository is an in-memory implementation of
// CatalogRepository. A slice keeps the seed order, which buyers see as
// the catalog order.
type MemoryCatalogRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryCatalogRepository creates a catalog backed by the given seed.
func NewMemoryCatalogRepository(seed []models.Product) *MemoryCatalogRepository {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &MemoryCatalogRepository{products: products}
}

// GetAll returns all catalog products in seed order.
func (r *MemoryCatalogRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, len(r.products))
	copy(productList, r.products)
	return productList, nil
}

// GetByID returns a catalog product by its ID.
func (r *MemoryCatalogRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %d not found", id)
}
