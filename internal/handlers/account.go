package handlers

import (
	"errors"

	"remat/internal/services/account"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler exposes account reads: balance, points, and history.
type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(s account.Service) *AccountHandler {
	return &AccountHandler{service: s}
}

// GetAccount handles GET /api/account.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	acct, err := h.service.GetAccount(c.Context(), claims.UID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return response.NotFound(c, "account not found")
		}
		return response.ServerError(c, "failed to get account")
	}
	return response.Success(c, "account", acct)
}

// ListTransactions handles GET /api/transactions.
func (h *AccountHandler) ListTransactions(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	records, err := h.service.ListTransactions(c.Context(), claims.UID, limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to list transactions")
	}
	return response.Success(c, "transactions", records)
}
