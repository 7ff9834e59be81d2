package repositories

import (
	"markethub/internal/models"
)

// CatalogRepository defines read access to the public product catalog.
// The catalog is static from the buyer's point of view; ordering of
// GetAll is stable and is part of the contract.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
}
