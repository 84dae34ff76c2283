package handler

import (
	"quizcraft/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports process and seen-store health.
type HealthHandler struct {
	store domain.SeenStore
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store domain.SeenStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.store.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"cache":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
