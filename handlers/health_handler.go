package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports reachability of a backing dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	deps []Pinger
}

func NewHealthHandler(deps ...Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Health godoc
// @Summary Service health
// @Description Reports UP when every backing dependency is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	for _, dep := range h.deps {
		if err := dep.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "DOWN"})
		}
	}
	return c.JSON(fiber.Map{"status": "UP"})
}
