package handlers

import (
	"errors"

	"boostify/internal/services/order"
	"boostify/internal/services/wallet"
	"boostify/internal/utils"
	"boostify/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ServiceID uint   `json:"service_id"`
		Link      string `json:"link"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.ServiceID == 0 || input.Link == "" {
		return utils.BadRequest(c, "service_id and link are required")
	}
	if input.Quantity <= 0 {
		return utils.BadRequest(c, "Quantity must be greater than 0")
	}

	placed, err := h.orderService.PlaceOrder(c.Context(), order.PlaceOrderInput{
		UserID:    claims.UserID,
		ServiceID: input.ServiceID,
		Link:      input.Link,
		Quantity:  input.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrServiceUnavailable):
			return utils.NotFound(c, "Service is not available")
		case errors.Is(err, order.ErrNoPriceForQuantity):
			return utils.BadRequest(c, "No price defined for this quantity")
		case errors.Is(err, wallet.ErrInsufficientBalance):
			return utils.BadRequest(c, "Insufficient balance")
		default:
			return utils.InternalError(c, "Failed to place order")
		}
	}

	return utils.Created(c, fiber.Map{"order": placed})
}

func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	orders, total, err := h.orderService.ListUserOrders(c.Context(), claims.UserID, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch orders")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, orders))
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	reference := c.Params("reference")
	o, err := h.orderService.GetOrder(c.Context(), claims.UserID, reference)
	if err != nil {
		if errors.Is(err, order.ErrNotOrderOwner) {
			return utils.Forbidden(c, "Access denied")
		}
		return utils.NotFound(c, "Order not found")
	}

	return utils.Success(c, fiber.Map{"order": o})
}
