package services

import (
	"encoding/json"
	"log"
	"sync"

	"markethub/internal/models"
	"markethub/pkg/rabbitmq"
)

// Placeholder values applied when a seller submits a draft with empty
// required fields. Lenient acceptance is deliberate: the seller panel
// never rejects a draft.
const (
	DefaultProductName     = "Новый товар"
	DefaultProductPrice    = 1000
	DefaultProductCategory = "Без категории"
	DefaultProductImage    = "/placeholder.svg"
	DefaultShopName        = "Мой магазин"
)

// SellerInventoryService owns the seller's private product set. It is
// an independent namespace from the public catalog: ids are assigned by
// an internal counter and may numerically collide with catalog ids
// without conflict, because the two collections are never merged.
type SellerInventoryService struct {
	products []models.Product
	nextID   int
	shopName string
	mqClient *rabbitmq.Client
	mu       sync.RWMutex
}

// NewSellerInventoryService creates an empty inventory. mqClient may be
// nil, in which case lifecycle events are not published.
func NewSellerInventoryService(mqClient *rabbitmq.Client) *SellerInventoryService {
	return &SellerInventoryService{
		nextID:   1,
		shopName: DefaultShopName,
		mqClient: mqClient,
	}
}

// SetShopName sets the display name stamped on newly created products.
func (s *SellerInventoryService) SetShopName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" {
		s.shopName = name
	}
}

// CreateProduct materializes a draft into a product: assigns a fresh id,
// fills empty required fields with placeholders, zeroes rating and
// review count, appends it and returns the result.
func (s *SellerInventoryService) CreateProduct(draft models.ProductDraft) models.Product {
	s.mu.Lock()

	product := models.Product{
		ID:       s.nextID,
		Name:     draft.Name,
		Price:    draft.Price,
		Category: draft.Category,
		Image:    draft.Image,
		Rating:   0,
		Reviews:  0,
		Seller:   s.shopName,
	}
	s.nextID++

	if product.Name == "" {
		product.Name = DefaultProductName
	}
	if product.Price <= 0 {
		product.Price = DefaultProductPrice
	}
	if product.Category == "" {
		product.Category = DefaultProductCategory
	}
	if product.Image == "" {
		product.Image = DefaultProductImage
	}

	s.products = append(s.products, product)
	s.mu.Unlock()

	s.publishEvent("product.created", product)
	return product
}

// UpdateProduct replaces the stored product carrying the same id,
// keeping its position in the list. Empty required fields are defaulted
// the same way as on create. Returns ErrProductNotFound if the id is
// absent; the inventory is unchanged in that case.
func (s *SellerInventoryService) UpdateProduct(product models.Product) error {
	if product.Name == "" {
		product.Name = DefaultProductName
	}
	if product.Price <= 0 {
		product.Price = DefaultProductPrice
	}
	if product.Category == "" {
		product.Category = DefaultProductCategory
	}
	if product.Image == "" {
		product.Image = DefaultProductImage
	}

	s.mu.Lock()
	found := false
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrProductNotFound
	}
	s.publishEvent("product.updated", product)
	return nil
}

// DeleteProduct removes the product with the given id. Returns
// ErrProductNotFound if it is absent; repeated deletes are harmless.
func (s *SellerInventoryService) DeleteProduct(productID int) error {
	s.mu.Lock()
	found := false
	var removed models.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			removed = s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrProductNotFound
	}
	s.publishEvent("product.deleted", removed)
	return nil
}

// GetProductByID returns the inventory product with the given id, or
// ErrProductNotFound.
func (s *SellerInventoryService) GetProductByID(productID int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == productID {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Products returns a copy of the inventory in creation order.
func (s *SellerInventoryService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Len returns the number of products in the inventory.
func (s *SellerInventoryService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// publishEvent sends an inventory lifecycle event to RabbitMQ. Without a
// configured client this is a no-op; event delivery is best effort and
// never fails the mutation that triggered it.
func (s *SellerInventoryService) publishEvent(routingKey string, product models.Product) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"price":     product.Price,
		"category":  product.Category,
		"seller":    product.Seller,
	})
	if err != nil {
		log.Printf("Failed to marshal inventory event: %v", err)
		return
	}

	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", routingKey, product.ID, err)
	}
}
