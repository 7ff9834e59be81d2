package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"markethub/internal/models"
	"markethub/internal/services"
)

// SessionHandler exposes the navigation and selection state.
type SessionHandler struct {
	session *services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(session *services.SessionService) *SessionHandler {
	return &SessionHandler{
		session: session,
	}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/session")
	sessionRoutes.Get("/", h.HandleGetSession)
	sessionRoutes.Post("/navigate", h.HandleNavigate)
	sessionRoutes.Post("/select", h.HandleSelectProduct)
}

// HandleGetSession returns the current session snapshot.
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	return c.JSON(h.session.Snapshot())
}

type navigateRequest struct {
	Page models.Page `json:"page"`
}

// HandleNavigate moves the session to another page, subject to the
// selection and seller guards.
func (h *SessionHandler) HandleNavigate(c *fiber.Ctx) error {
	var req navigateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing navigate body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.session.Navigate(req.Page); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrSelectionRequired), errors.Is(err, services.ErrSellerRequired):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not navigate",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(h.session.Snapshot())
}

// HandleSelectProduct selects a product and opens its detail page in one
// step. The body carries the product, which may come from the catalog or
// from the seller inventory.
func (h *SessionHandler) HandleSelectProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing select body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.session.SelectProduct(product)
	return c.JSON(h.session.Snapshot())
}
