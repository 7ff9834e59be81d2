package models

// Product represents a purchasable product in the marketplace.
// Prices are whole rubles; no fractional cents are modeled.
type Product struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement:false" validate:"gte=0"`
	Name     string  `json:"name" gorm:"type:varchar(200)" validate:"max=200"`
	Price    int     `json:"price" validate:"gte=0"`
	Category string  `json:"category" gorm:"type:varchar(100)"`
	Image    string  `json:"image" gorm:"type:varchar(255)"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Reviews  int     `json:"reviews" validate:"gte=0"`
	Seller   string  `json:"seller" gorm:"type:varchar(100)"`
}

// ProductDraft is the payload a seller submits when creating a product.
// It deliberately carries no ID; the inventory assigns one. Empty required
// fields are defaulted rather than rejected (lenient acceptance policy).
type ProductDraft struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Category is a browsable product category shown on the home page.
type Category struct {
	Name string `json:"name"`
}
