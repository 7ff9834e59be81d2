package repositories

import (
	"markethub/internal/models"
)

// DefaultCatalog returns the built-in product catalog, used when no
// catalog file or database is configured.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Беспроводные наушники", Price: 4990, Category: "Электроника", Image: "/placeholder.svg", Rating: 4.8, Reviews: 234, Seller: "TechStore"},
		{ID: 2, Name: "Умные часы", Price: 8990, Category: "Электроника", Image: "/placeholder.svg", Rating: 4.6, Reviews: 189, Seller: "GadgetPro"},
		{ID: 3, Name: "Кожаная сумка", Price: 6490, Category: "Аксессуары", Image: "/placeholder.svg", Rating: 4.9, Reviews: 145, Seller: "FashionHub"},
		{ID: 4, Name: "Настольная лампа", Price: 2990, Category: "Дом", Image: "/placeholder.svg", Rating: 4.7, Reviews: 312, Seller: "HomeStyle"},
		{ID: 5, Name: "Спортивная бутылка", Price: 890, Category: "Спорт", Image: "/placeholder.svg", Rating: 4.5, Reviews: 567, Seller: "SportLife"},
		{ID: 6, Name: "Книга \"Мастер и Маргарита\"", Price: 590, Category: "Книги", Image: "/placeholder.svg", Rating: 5.0, Reviews: 892, Seller: "BookWorld"},
	}
}

// DefaultReviews returns the built-in review list.
func DefaultReviews() []models.Review {
	return []models.Review{
		{ID: 1, Author: "Алексей М.", Rating: 5, Text: "Отличный товар! Быстрая доставка и качественная упаковка.", Date: "15 дек 2024"},
		{ID: 2, Author: "Мария К.", Rating: 4, Text: "Хорошее качество, но цена немного завышена.", Date: "10 дек 2024"},
		{ID: 3, Author: "Дмитрий П.", Rating: 5, Text: "Превзошло ожидания! Рекомендую всем.", Date: "5 дек 2024"},
	}
}

// DefaultCategories returns the browsable categories shown on the home page.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Name: "Электроника"},
		{Name: "Одежда"},
		{Name: "Дом"},
		{Name: "Спорт"},
		{Name: "Книги"},
		{Name: "Красота"},
	}
}
