package services

import (
	"strings"

	"markethub/internal/models"
	"markethub/internal/repositories"
)

// CatalogService handles read access to the public catalog and its
// reviews.
type CatalogService struct {
	repo       repositories.CatalogRepository
	reviewRepo repositories.ReviewRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository, reviewRepo repositories.ReviewRepository) *CatalogService {
	return &CatalogService{
		repo:       repo,
		reviewRepo: reviewRepo,
	}
}

// GetAllProducts retrieves all catalog products in catalog order.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single catalog product by its ID.
func (s *CatalogService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// SearchProducts returns every catalog product whose name contains query
// as a case-insensitive substring, preserving catalog order. An empty
// query returns the full catalog. No match is an empty result, not an
// error.
func (s *CatalogService) SearchProducts(query string) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}

	needle := strings.ToLower(query)
	matches := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// GetReviews retrieves the review list.
func (s *CatalogService) GetReviews() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}
