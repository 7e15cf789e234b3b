package handlers

import (
	"remat/internal/services/ledger"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler exposes the balance-transfer endpoint.
type TransferHandler struct {
	service ledger.Service
}

func NewTransferHandler(s ledger.Service) *TransferHandler {
	return &TransferHandler{service: s}
}

// Transfer handles POST /api/transfer.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	var input ledger.TransferInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	result, err := h.service.Transfer(c.Context(), claims.UID, input)
	if err != nil {
		return ledgerError(c, err)
	}
	return response.Success(c, "transfer completed", result)
}

// ledgerError maps the ledger error taxonomy onto HTTP statuses. Internal
// and aborted failures keep a generic lead message; the diagnostic text
// rides along for the client logs.
func ledgerError(c *fiber.Ctx, err error) error {
	switch ledger.KindOf(err) {
	case ledger.KindUnauthenticated:
		return response.Unauthorized(c, err.Error())
	case ledger.KindInvalidArgument:
		return response.BadRequest(c, err.Error())
	case ledger.KindNotFound:
		return response.NotFound(c, err.Error())
	case ledger.KindFailedPrecondition:
		return response.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return response.ServerError(c, err.Error())
	}
}
