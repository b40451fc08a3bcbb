package handlers

import (
	"github.com/dicehaven/backend/internal/config"
	"github.com/dicehaven/backend/internal/targets"
	"github.com/gofiber/fiber/v2"
)

// ConfigHandler exposes the moderation setup that clients need: which target
// kinds can be reported, the minimum reason length, and display labels for
// report statuses.
type ConfigHandler struct {
	modCfg   *config.ModerationConfig
	registry *targets.Registry
}

func NewConfigHandler(modCfg *config.ModerationConfig, registry *targets.Registry) *ConfigHandler {
	return &ConfigHandler{modCfg: modCfg, registry: registry}
}

func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"reason_min_length": h.modCfg.ReasonMinLength,
		"targets":           h.registry.Keys(),
		"status_labels":     h.modCfg.StatusLabels,
	})
}
