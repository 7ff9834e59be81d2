package models

// Page identifies one of the storefront's screens.
type Page string

const (
	PageHome            Page = "home"
	PageCatalog         Page = "catalog"
	PageProduct         Page = "product"
	PageProfile         Page = "profile"
	PageReviews         Page = "reviews"
	PageSellerRegister  Page = "seller-register"
	PageSellerDashboard Page = "seller-dashboard"
)

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageCatalog, PageProduct, PageProfile, PageReviews,
		PageSellerRegister, PageSellerDashboard:
		return true
	}
	return false
}
