package handler

import (
	"time"

	"quizcraft/internal/dto"
	"quizcraft/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler exposes the health monitor's latest status
type HealthHandler struct {
	monitor *service.HealthMonitor
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(monitor *service.HealthMonitor) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

// GetHealth godoc
// @Summary Generation service availability
// @Description Returns the last health probe result; advisory only, generation is never gated on it
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	status := h.monitor.Status()

	resp := dto.HealthResponse{
		Available: status.Available,
		Message:   status.Message,
	}
	if !status.LastCheckedAt.IsZero() {
		resp.LastCheckedAt = status.LastCheckedAt.Format(time.RFC3339)
	}
	return c.JSON(resp)
}
