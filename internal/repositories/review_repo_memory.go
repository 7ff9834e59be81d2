package repositories

import (
	"sync"

	"markethub/internal/models"
)

// MemoryReviewRepository is an in-memory implementation of ReviewRepository.
type MemoryReviewRepository struct {
	reviews []models.Review
	mu      sync.RWMutex
}

// NewMemoryReviewRepository creates a review store backed by the given seed.
func NewMemoryReviewRepository(seed []models.Review) *MemoryReviewRepository {
	reviews := make([]models.Review, len(seed))
	copy(reviews, seed)
	return &MemoryReviewRepository{reviews: reviews}
}

// GetAll returns all reviews in seed order.
func (r *MemoryReviewRepository) GetAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviewList := make([]models.Review, len(r.reviews))
	copy(reviewList, r.reviews)
	return reviewList, nil
}
