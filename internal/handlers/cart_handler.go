package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"markethub/internal/models"
	"markethub/internal/services"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cart     *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{
		cart:     cart,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:id", h.HandleSetQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// cartResponse is the cart read model: lines plus the derived totals.
type cartResponse struct {
	Items []models.CartItem `json:"items"`
	Total int               `json:"total"`
	Count int               `json:"count"`
}

func (h *CartHandler) snapshot() cartResponse {
	return cartResponse{
		Items: h.cart.Items(),
		Total: h.cart.Total(),
		Count: h.cart.Count(),
	}
}

// HandleGetCart returns the current cart snapshot.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(h.snapshot())
}

// HandleAddItem adds a product to the cart, merging with an existing
// line for the same product id. The body carries the product itself,
// which the cart snapshots.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing add-to-cart body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
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

	h.cart.AddItem(product)
	return c.Status(fiber.StatusCreated).JSON(h.snapshot())
}

// quantityRequest is the body of a quantity update. Non-integer
// quantities never reach the cart model: BodyParser rejects them here at
// the boundary.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleSetQuantity sets the quantity of an existing line. Zero or
// negative removes the line. An unknown id is reported as 404; the cart
// stays unchanged.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.cart.SetQuantity(productID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Cart has no item with product id %d", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update quantity",
			"error":   err.Error(),
		})
	}
	return c.JSON(h.snapshot())
}

// HandleRemoveItem deletes a line from the cart. Removal is idempotent:
// removing an absent id leaves the cart unchanged and still succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be an integer",
		})
	}

	if err := h.cart.RemoveItem(productID); err != nil && !errors.Is(err, services.ErrItemNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item",
			"error":   err.Error(),
		})
	}
	return c.JSON(h.snapshot())
}
