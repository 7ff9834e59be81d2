package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"markethub/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
// Catalog order is the ascending ID order of the seeded rows.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// GetAll retrieves all catalog products from the database.
func (r *GORMCatalogRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single catalog product by its ID.
func (r *GORMCatalogRepository) GetByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Seed inserts the given products unless the table already has rows, so
// restarting against the same database does not duplicate the catalog.
func (r *GORMCatalogRepository) Seed(products []models.Product) error {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 || len(products) == 0 {
		return nil
	}
	if err := r.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
