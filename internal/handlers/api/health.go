package api

import (
	"github.com/gofiber/fiber/v3"
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthz reports liveness. The engine has no external dependencies to
// probe; a serving process is a healthy process.
func (h *HealthHandler) Healthz(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{"alive": true})
}
