package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"markethub/internal/models"
)

// SessionService owns the navigation and selection state of the single
// active session: the current page, the one-way seller flag, the product
// selected for detail view and the product open in the seller's
// create/edit form.
type SessionService struct {
	id              string
	page            models.Page
	isSeller        bool
	selectedProduct *models.Product
	editingProduct  *models.Product
	registration    *models.SellerRegistration

	jwtSecret  []byte
	tokenDurat time.Duration

	mu sync.RWMutex
}

// SessionSnapshot is the read model the view layer re-reads after every
// mutation.
type SessionSnapshot struct {
	ID              string                     `json:"id"`
	Page            models.Page                `json:"page"`
	IsSeller        bool                       `json:"is_seller"`
	SelectedProduct *models.Product            `json:"selected_product"`
	EditingProduct  *models.Product            `json:"editing_product"`
	Registration    *models.SellerRegistration `json:"registration,omitempty"`
}

// NewSessionService creates a fresh session starting on the home page.
func NewSessionService(jwtSecret string) *SessionService {
	return &SessionService{
		id:         uuid.New().String(),
		page:       models.PageHome,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// ID returns the session identifier.
func (s *SessionService) ID() string {
	return s.id
}

// Navigate moves the session to the given page. Entering the product
// page requires a selection (use SelectProduct for that transition) and
// entering the seller dashboard requires a registered seller. Leaving
// the product page clears the selection.
func (s *SessionService) Navigate(page models.Page) error {
	if !page.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch page {
	case models.PageProduct:
		if s.selectedProduct == nil {
			return ErrSelectionRequired
		}
	case models.PageSellerDashboard:
		if !s.isSeller {
			return ErrSellerRequired
		}
	}

	if page != models.PageProduct {
		s.selectedProduct = nil
	}
	s.page = page
	return nil
}

// SelectProduct marks a product as selected and opens its detail page.
// Selection and navigation happen in one step so the product page guard
// can never observe a half-made transition.
func (s *SessionService) SelectProduct(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := product
	s.selectedProduct = &p
	s.page = models.PageProduct
}

// RegisterAsSeller flips the session into seller mode, stores the
// registration, navigates to the dashboard and returns a signed seller
// token. The flag is one-way: no transition un-registers a seller within
// a session. Repeated registration just re-issues a token.
func (s *SessionService) RegisterAsSeller(reg models.SellerRegistration) (string, error) {
	s.mu.Lock()
	s.isSeller = true
	s.registration = &reg
	s.page = models.PageSellerDashboard
	s.mu.Unlock()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": s.id,
		"shop_name":  reg.ShopName,
		"seller":     true,
		"exp":        time.Now().Add(s.tokenDurat).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate seller token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a seller token, returning its
// claims if valid.
func (s *SessionService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if seller, _ := claims["seller"].(bool); !seller {
		return nil, fmt.Errorf("token does not carry seller rights")
	}
	return claims, nil
}

// IsSeller reports whether the session has registered as a seller.
func (s *SessionService) IsSeller() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isSeller
}

// StartCreate opens the product form in create mode: the editing slot
// holds an empty placeholder with no id.
func (s *SessionService) StartCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingProduct = &models.Product{}
}

// StartEdit opens the product form in edit mode for an existing product.
func (s *SessionService) StartEdit(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := product
	s.editingProduct = &p
}

// CloseForm clears the editing slot; inventory create and update call
// this on completion.
func (s *SessionService) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingProduct = nil
}

// Snapshot returns the current session read model.
func (s *SessionService) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := SessionSnapshot{
		ID:       s.id,
		Page:     s.page,
		IsSeller: s.isSeller,
	}
	if s.selectedProduct != nil {
		p := *s.selectedProduct
		snap.SelectedProduct = &p
	}
	if s.editingProduct != nil {
		p := *s.editingProduct
		snap.EditingProduct = &p
	}
	if s.registration != nil {
		r := *s.registration
		snap.Registration = &r
	}
	return snap
}
