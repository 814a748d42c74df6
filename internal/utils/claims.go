package utils

import (
	"errors"

	"boostify/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserClaims extracts the authenticated user's claims from the request
// context, where the auth middleware stored them.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return nil, errors.New("no authenticated user on request")
	}
	return claims, nil
}
