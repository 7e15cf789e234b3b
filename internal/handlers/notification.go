package handlers

import (
	"errors"
	"strconv"

	"remat/internal/services/notification"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler exposes the notification outbox.
type NotificationHandler struct {
	service notification.Service
}

func NewNotificationHandler(s notification.Service) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	records, err := h.service.List(c.Context(), claims.UID, limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to list notifications")
	}
	return response.Success(c, "notifications", records)
}

// MarkRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid notification id")
	}

	if err := h.service.MarkRead(c.Context(), claims.UID, uint(id)); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return response.NotFound(c, "notification not found")
		}
		return response.ServerError(c, "failed to mark notification read")
	}
	return response.Success(c, "notification marked read", nil)
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	if err := h.service.MarkAllRead(c.Context(), claims.UID); err != nil {
		return response.ServerError(c, "failed to mark notifications read")
	}
	return response.Success(c, "notifications marked read", nil)
}
