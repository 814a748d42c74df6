package handlers

import (
	"boostify/internal/models"
	"boostify/internal/repositories"
	"boostify/internal/services/currency"
	"boostify/internal/services/order"
	"boostify/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	services     repositories.ServiceRepository
	orderService order.Service
}

func NewCatalogHandler(services repositories.ServiceRepository, orderService order.Service) *CatalogHandler {
	return &CatalogHandler{
		services:     services,
		orderService: orderService,
	}
}

// ListServices returns the active catalog grouped as stored.
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.services.ListActive(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to load services")
	}
	return utils.Success(c, fiber.Map{"services": services})
}

// QuotePrice prices a quantity for a service in the requested currency.
// Unmatched quantities yield amount 0 rather than an error.
func (h *CatalogHandler) QuotePrice(c *fiber.Ctx) error {
	var input struct {
		ServiceID uint   `json:"service_id"`
		Quantity  int    `json:"quantity"`
		Currency  string `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.ServiceID == 0 {
		return utils.BadRequest(c, "service_id is required")
	}
	if input.Currency == "" {
		input.Currency = models.CurrencyUSD
	}

	quote, err := h.orderService.Quote(c.Context(), input.ServiceID, input.Quantity, input.Currency)
	if err != nil {
		return utils.NotFound(c, "Service not found")
	}

	return utils.Success(c, fiber.Map{
		"quote":     quote,
		"formatted": currency.Format(quote.Amount, quote.Currency),
	})
}
