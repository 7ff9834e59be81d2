package models

// SellerRegistration is the application form a user submits to become a
// seller. Unlike product drafts, registration fields are validated: the
// storefront marks them required.
type SellerRegistration struct {
	ShopName      string `json:"shop_name" validate:"required,min=2,max=100"`
	Category      string `json:"category" validate:"required,max=100"`
	LegalName     string `json:"legal_name" validate:"required,max=200"`
	INN           string `json:"inn" validate:"required,numeric,min=10,max=12"`
	OGRN          string `json:"ogrn" validate:"required,numeric,min=13,max=15"`
	LegalAddress  string `json:"legal_address" validate:"required,max=300"`
	Phone         string `json:"phone" validate:"required,max=20"`
	Email         string `json:"email" validate:"required,email"`
	Description   string `json:"description" validate:"omitempty,max=500"`
	TermsAccepted bool   `json:"terms_accepted" validate:"required"`
}
