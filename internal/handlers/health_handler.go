package handlers

import (
	"time"

	"github.com/dicehaven/backend/internal/database"
	"github.com/dicehaven/backend/internal/targets"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	registry *targets.Registry
}

func NewHealthHandler(registry *targets.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(fiber.Map{
		"status":       "ok",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"db":           dbStatus,
		"target_kinds": len(h.registry.Keys()),
	})
}
