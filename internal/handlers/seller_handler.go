package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"markethub/internal/middleware"
	"markethub/internal/models"
	"markethub/internal/services"
)

// SellerHandler handles seller registration and the seller panel:
// inventory CRUD plus the create/edit form state.
type SellerHandler struct {
	inventory *services.SellerInventoryService
	session   *services.SessionService
	validate  *validator.Validate
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(inventory *services.SellerInventoryService, session *services.SessionService) *SellerHandler {
	return &SellerHandler{
		inventory: inventory,
		session:   session,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the seller routes with the Fiber app.
// Registration is public; everything else requires a seller token.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	sellerRoutes := router.Group("/seller")
	sellerRoutes.Post("/register", h.HandleRegister)

	panel := sellerRoutes.Group("", middleware.SellerRequired(h.session))
	panel.Get("/products", h.HandleGetProducts)
	panel.Post("/products", h.HandleCreateProduct)
	panel.Put("/products/:id", h.HandleUpdateProduct)
	panel.Delete("/products/:id", h.HandleDeleteProduct)
	panel.Post("/form", h.HandleOpenForm)
	panel.Delete("/form", h.HandleCloseForm)
}

// HandleRegister processes the seller application form. On success the
// session becomes a seller for good and a seller token is issued.
func (h *SellerHandler) HandleRegister(c *fiber.Ctx) error {
	var reg models.SellerRegistration
	if err := c.BodyParser(&reg); err != nil {
		log.Printf("Error parsing registration body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(reg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	token, err := h.session.RegisterAsSeller(reg)
	if err != nil {
		log.Printf("Error registering seller: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register seller",
			"error":   err.Error(),
		})
	}
	h.inventory.SetShopName(reg.ShopName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Seller registered successfully",
		"token":   token,
	})
}

// HandleGetProducts lists the seller's inventory in creation order.
func (h *SellerHandler) HandleGetProducts(c *fiber.Ctx) error {
	return c.JSON(h.inventory.Products())
}

// HandleCreateProduct creates a product from a draft. Empty required
// fields are defaulted, never rejected. The edit form is closed on
// completion.
func (h *SellerHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var draft models.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing product draft: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product := h.inventory.CreateProduct(draft)
	h.session.CloseForm()

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces an existing inventory product in place.
// The edit form is closed on completion.
func (h *SellerHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = productID

	if err := h.inventory.UpdateProduct(product); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Inventory has no product with id %d", productID),
			})
		}
		log.Printf("Error updating product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	h.session.CloseForm()

	updated, err := h.inventory.GetProductByID(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read back updated product",
			"error":   err.Error(),
		})
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes an inventory product. Deletion is
// idempotent: an absent id still answers 200.
func (h *SellerHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	if err := h.inventory.DeleteProduct(productID); err != nil && !errors.Is(err, services.ErrProductNotFound) {
		log.Printf("Error deleting product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %d deleted successfully", productID),
	})
}

// openFormRequest optionally names an existing product to edit. Without
// a product id the form opens in create mode.
type openFormRequest struct {
	ProductID *int `json:"product_id"`
}

// HandleOpenForm opens the product create/edit form.
func (h *SellerHandler) HandleOpenForm(c *fiber.Ctx) error {
	var req openFormRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	if req.ProductID == nil {
		h.session.StartCreate()
		return c.JSON(h.session.Snapshot())
	}

	product, err := h.inventory.GetProductByID(*req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Inventory has no product with id %d", *req.ProductID),
		})
	}
	h.session.StartEdit(*product)
	return c.JSON(h.session.Snapshot())
}

// HandleCloseForm closes the product form without saving.
func (h *SellerHandler) HandleCloseForm(c *fiber.Ctx) error {
	h.session.CloseForm()
	return c.JSON(h.session.Snapshot())
}
