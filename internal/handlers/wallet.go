package handlers

import (
	"errors"

	"boostify/internal/services/payment"
	"boostify/internal/services/wallet"
	"boostify/internal/utils"
	"boostify/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService  wallet.Service
	paymentService payment.Service
}

func NewWalletHandler(walletService wallet.Service, paymentService payment.Service) *WalletHandler {
	return &WalletHandler{
		walletService:  walletService,
		paymentService: paymentService,
	}
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to get wallet")
	}

	return utils.Success(c, fiber.Map{"wallet": w})
}

func (h *WalletHandler) TopUpWallet(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount    float64 `json:"amount"`
		CardToken string  `json:"card_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}
	if input.CardToken == "" {
		return utils.BadRequest(c, "card_token is required")
	}

	chargeID, err := h.paymentService.TopUp(c.Context(), claims.UserID, input.Amount, input.CardToken)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message":   "Top up successful",
		"amount":    input.Amount,
		"charge_id": chargeID,
	})
}

func (h *WalletHandler) TransactionHistory(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	txs, total, err := h.walletService.TransactionHistory(c.Context(), claims.UserID, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch transactions")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, txs))
}
