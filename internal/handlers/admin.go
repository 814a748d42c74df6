package handlers

import (
	"strconv"
	"time"

	"boostify/internal/models"
	"boostify/internal/repositories"
	"boostify/internal/services/currency"
	"boostify/internal/services/settings"
	"boostify/internal/utils"
	"boostify/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the dashboard API: catalog, rates, settings and
// account management. Routes are gated by the admin permissions.
type AdminHandler struct {
	users    repositories.UserRepository
	orders   repositories.OrderRepository
	services repositories.ServiceRepository
	rates    repositories.RateRepository
	settings repositories.SettingRepository

	rateProvider *currency.Provider
	feeSettings  *settings.Service
}

func NewAdminHandler(
	users repositories.UserRepository,
	orders repositories.OrderRepository,
	services repositories.ServiceRepository,
	rates repositories.RateRepository,
	settingRepo repositories.SettingRepository,
	rateProvider *currency.Provider,
	feeSettings *settings.Service,
) *AdminHandler {
	return &AdminHandler{
		users:        users,
		orders:       orders,
		services:     services,
		rates:        rates,
		settings:     settingRepo,
		rateProvider: rateProvider,
		feeSettings:  feeSettings,
	}
}

// Users

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	users, total, err := h.users.List(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch users")
	}
	p.Total = total
	return c.JSON(pagination.Response(p, users))
}

func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil || input.Status == "" {
		return utils.BadRequest(c, "status is required")
	}

	if err := h.users.UpdateStatus(uint(id), input.Status); err != nil {
		return utils.InternalError(c, "Failed to update user")
	}
	return utils.Success(c, fiber.Map{"message": "User updated"})
}

// Orders

func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	orders, total, err := h.orders.List(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch orders")
	}
	p.Total = total
	return c.JSON(pagination.Response(p, orders))
}

// Services

type serviceInput struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Description       string `json:"description"`
	ResellerServiceID int    `json:"reseller_service_id"`
	MinQuantity       int    `json:"min_quantity"`
	MaxQuantity       int    `json:"max_quantity"`
	Active            *bool  `json:"active"`
	SortOrder         int    `json:"sort_order"`
}

func (h *AdminHandler) CreateService(c *fiber.Ctx) error {
	var input serviceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Name == "" || input.Category == "" || input.ResellerServiceID == 0 {
		return utils.BadRequest(c, "name, category and reseller_service_id are required")
	}

	svc := models.Service{
		Name:              input.Name,
		Category:          input.Category,
		Description:       input.Description,
		ResellerServiceID: input.ResellerServiceID,
		MinQuantity:       input.MinQuantity,
		MaxQuantity:       input.MaxQuantity,
		Active:            input.Active == nil || *input.Active,
		SortOrder:         input.SortOrder,
	}
	if err := h.services.Create(&svc); err != nil {
		return utils.InternalError(c, "Failed to create service")
	}
	return utils.Created(c, fiber.Map{"service": svc})
}

func (h *AdminHandler) ListServices(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	services, total, err := h.services.List(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch services")
	}
	p.Total = total
	return c.JSON(pagination.Response(p, services))
}

func (h *AdminHandler) UpdateService(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid service id")
	}
	svc, err := h.services.GetByID(uint(id))
	if err != nil {
		return utils.NotFound(c, "Service not found")
	}

	// Pointer fields so a partial update only touches what the body names.
	// Zero values (min_quantity: 0, sort_order: 0) are valid settings here,
	// which rules out the present-when-non-zero convention.
	var input struct {
		Name              *string `json:"name"`
		Category          *string `json:"category"`
		Description       *string `json:"description"`
		ResellerServiceID *int    `json:"reseller_service_id"`
		MinQuantity       *int    `json:"min_quantity"`
		MaxQuantity       *int    `json:"max_quantity"`
		Active            *bool   `json:"active"`
		SortOrder         *int    `json:"sort_order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Category != nil {
		svc.Category = *input.Category
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.ResellerServiceID != nil {
		svc.ResellerServiceID = *input.ResellerServiceID
	}
	if input.MinQuantity != nil {
		svc.MinQuantity = *input.MinQuantity
	}
	if input.MaxQuantity != nil {
		svc.MaxQuantity = *input.MaxQuantity
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}
	if input.SortOrder != nil {
		svc.SortOrder = *input.SortOrder
	}

	if err := h.services.Update(svc); err != nil {
		return utils.InternalError(c, "Failed to update service")
	}
	return utils.Success(c, fiber.Map{"service": svc})
}

func (h *AdminHandler) DeleteService(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid service id")
	}
	if err := h.services.Delete(uint(id)); err != nil {
		return utils.NotFound(c, "Service not found")
	}
	return utils.Success(c, fiber.Map{"message": "Service deleted"})
}

// ReplaceTiers swaps a service's whole tier table. Tiers come in as stored
// upstream: quantities as ints, unit price as a decimal string.
func (h *AdminHandler) ReplaceTiers(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid service id")
	}
	if _, err := h.services.GetByID(uint(id)); err != nil {
		return utils.NotFound(c, "Service not found")
	}

	var input struct {
		Tiers []models.PriceTier `json:"tiers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	for _, t := range input.Tiers {
		if t.MinQuantity < 0 || t.MaxQuantity < t.MinQuantity || t.UnitBasis <= 0 {
			return utils.BadRequest(c, "Invalid tier bounds")
		}
	}

	if err := h.services.ReplaceTiers(uint(id), input.Tiers); err != nil {
		return utils.InternalError(c, "Failed to update tiers")
	}
	return utils.Success(c, fiber.Map{"message": "Tiers updated"})
}

// Exchange rates

func (h *AdminHandler) ListRates(c *fiber.Ctx) error {
	rates, err := h.rates.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to fetch rates")
	}
	return utils.Success(c, fiber.Map{"rates": rates})
}

func (h *AdminHandler) UpsertRate(c *fiber.Ctx) error {
	var input struct {
		FromCurrency string  `json:"from_currency"`
		ToCurrency   string  `json:"to_currency"`
		Rate         float64 `json:"rate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.FromCurrency == "" || input.ToCurrency == "" || input.Rate <= 0 {
		return utils.BadRequest(c, "from_currency, to_currency and a positive rate are required")
	}

	rate := models.ExchangeRate{
		FromCurrency: input.FromCurrency,
		ToCurrency:   input.ToCurrency,
		Rate:         input.Rate,
		CapturedAt:   time.Now(),
	}
	if err := h.rates.Upsert(c.Context(), &rate); err != nil {
		return utils.InternalError(c, "Failed to store rate")
	}

	// New rates should take effect before the TTL would expire them.
	h.rateProvider.ClearCache()

	return utils.Created(c, fiber.Map{"rate": rate})
}

func (h *AdminHandler) ClearRateCache(c *fiber.Ctx) error {
	h.rateProvider.ClearCache()
	return utils.Success(c, fiber.Map{"message": "Rate cache cleared"})
}

// Settings

func (h *AdminHandler) ListSettings(c *fiber.Ctx) error {
	all, err := h.settings.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to fetch settings")
	}
	return utils.Success(c, fiber.Map{
		"settings":    all,
		"current_fee": h.feeSettings.Current(),
	})
}

func (h *AdminHandler) SetSetting(c *fiber.Ctx) error {
	var input struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&input); err != nil || input.Key == "" {
		return utils.BadRequest(c, "key is required")
	}

	if err := h.settings.Set(c.Context(), input.Key, input.Value); err != nil {
		return utils.InternalError(c, "Failed to store setting")
	}

	// Fee changes apply on the next refresh tick; force one so admins see
	// the effect immediately.
	if err := h.feeSettings.Refresh(c.Context()); err != nil {
		return utils.InternalError(c, "Setting stored but refresh failed")
	}
	return utils.Success(c, fiber.Map{"message": "Setting updated"})
}
