package handlers

import (
	"errors"

	"boostify/internal/repositories"
	"boostify/internal/services/user"
	"boostify/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var input user.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}
	if len(input.Password) < 8 {
		return utils.BadRequest(c, "Password must be at least 8 characters")
	}

	created, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return utils.BadRequest(c, "Email already registered")
		}
		return utils.InternalError(c, "Failed to register user")
	}

	return utils.Created(c, fiber.Map{
		"user": fiber.Map{
			"id":       created.ID,
			"name":     created.Name,
			"email":    created.Email,
			"currency": created.Currency,
		},
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.Map{
		"id":       u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"role":     u.Role,
		"status":   u.Status,
		"currency": u.Currency,
	})
}
