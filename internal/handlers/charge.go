package handlers

import (
	"errors"

	"remat/internal/services/charge"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ChargeHandler exposes the balance top-up endpoint.
type ChargeHandler struct {
	service charge.Service
}

func NewChargeHandler(s charge.Service) *ChargeHandler {
	return &ChargeHandler{service: s}
}

// Charge handles POST /api/charge.
func (h *ChargeHandler) Charge(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	var input charge.ChargeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	result, err := h.service.Charge(c.Context(), claims.UID, input)
	if err != nil {
		switch {
		case errors.Is(err, charge.ErrInvalidAmount):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, charge.ErrAccountNotFound):
			return response.NotFound(c, err.Error())
		case errors.Is(err, charge.ErrPaymentDeclined):
			return response.Error(c, fiber.StatusPaymentRequired, err.Error())
		default:
			return response.ServerError(c, err.Error())
		}
	}
	return response.Success(c, "charge completed", result)
}
