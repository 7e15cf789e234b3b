package handlers

import (
	"remat/internal/services/qr"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// QRHandler builds and parses payment-request payloads.
type QRHandler struct {
	service qr.Service
}

func NewQRHandler(s qr.Service) *QRHandler {
	return &QRHandler{service: s}
}

// Generate handles GET /api/qr: the caller's own receive payload,
// optionally with a fixed amount.
func (h *QRHandler) Generate(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	amount := int64(c.QueryInt("amount", 0))
	raw, err := h.service.Encode(claims.UID, claims.Name, amount)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.Success(c, "qr payload", fiber.Map{"payload": raw})
}

// GenerateImage handles GET /api/qr/image: the caller's receive payload
// rendered as a PNG.
func (h *QRHandler) GenerateImage(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	amount := int64(c.QueryInt("amount", 0))
	raw, err := h.service.Encode(claims.UID, claims.Name, amount)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	png, err := qr.RenderPNG(raw, c.QueryInt("size", 0))
	if err != nil {
		return response.ServerError(c, "failed to render qr code")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Decode handles POST /api/qr/decode: turn a scanned payload into a
// transfer intent the client can confirm.
func (h *QRHandler) Decode(c *fiber.Ctx) error {
	if _, err := callerClaims(c); err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Payload string `json:"payload"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	payload, err := h.service.Decode(input.Payload)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.Success(c, "qr payload decoded", payload)
}
