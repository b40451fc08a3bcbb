package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModerationConfig is the static moderation setup loaded once at startup.
// StatusLabels are presentation-only strings for the admin panel; the state
// machine ignores them.
type ModerationConfig struct {
	ReasonMinLength int               `json:"reason_min_length"`
	Targets         []string          `json:"targets"`
	StatusLabels    map[string]string `json:"status_labels"`
}

// DefaultModerationConfig is used when no config file is present.
func DefaultModerationConfig() *ModerationConfig {
	return &ModerationConfig{
		ReasonMinLength: 15,
		Targets:         []string{"user", "campaign", "character", "post", "comment", "chat_message"},
		StatusLabels: map[string]string{
			"open":         "Open",
			"under_review": "Under review",
			"resolved":     "Resolved",
			"dismissed":    "Dismissed",
		},
	}
}

// LoadModerationConfig reads the moderation config file, falling back to
// defaults when the file does not exist.
func LoadModerationConfig(path string) (*ModerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultModerationConfig(), nil
		}
		return nil, fmt.Errorf("failed to read moderation config: %w", err)
	}

	cfg := DefaultModerationConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse moderation config: %w", err)
	}
	if cfg.ReasonMinLength <= 0 {
		cfg.ReasonMinLength = 15
	}
	return cfg, nil
}
