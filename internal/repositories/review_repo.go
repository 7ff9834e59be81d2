package repositories

import (
	"markethub/internal/models"
)

// ReviewRepository defines read access to customer reviews. Review
// submission is out of scope; the data is seed-only.
type ReviewRepository interface {
	GetAll() ([]models.Review, error)
}
