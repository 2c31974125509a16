package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default status messages
const (
	DefaultDeckRecycled       = "Deck recycled."
	DefaultMovedToFoundation  = "Moved to foundation."
	DefaultMovedToTableau     = "Moved to tableau."
	DefaultSelectedWaste      = "Selected waste card. Click destination."
	DefaultSelectedTableau    = "Selected tableau card(s). Click destination."
	DefaultSelectedFoundation = "Selected foundation card. Click destination."
	DefaultVictory            = "Congratulations! You won!"
)

// ValidateGameConfig validates a rule preset
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if config.Seed != nil && *config.Seed < 0 {
		return fmt.Errorf("config validation: seed must be non-negative, got %d", *config.Seed)
	}
	if strings.ContainsAny(config.Name, `/\`) {
		return fmt.Errorf("config validation: name must not contain path separators")
	}
	return nil
}

// DefaultConfig returns the classic draw-one preset
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "classic",
		Description: "Classic Klondike, draw one, unlimited recycles",
	}
	return WithDefaults(config)
}

// WithDefaults returns a copy of config with every unset message filled in
func WithDefaults(config *GameConfig) *GameConfig {
	c := *config
	m := &c.Messages
	if m.DeckRecycled == "" {
		m.DeckRecycled = DefaultDeckRecycled
	}
	if m.MovedToFoundation == "" {
		m.MovedToFoundation = DefaultMovedToFoundation
	}
	if m.MovedToTableau == "" {
		m.MovedToTableau = DefaultMovedToTableau
	}
	if m.SelectedWaste == "" {
		m.SelectedWaste = DefaultSelectedWaste
	}
	if m.SelectedTableau == "" {
		m.SelectedTableau = DefaultSelectedTableau
	}
	if m.SelectedFoundation == "" {
		m.SelectedFoundation = DefaultSelectedFoundation
	}
	if m.Victory == "" {
		m.Victory = DefaultVictory
	}
	return &c
}

// ParseGameConfig decodes a preset, choosing YAML or JSON by file extension
func ParseGameConfig(filename string, data []byte) (*GameConfig, error) {
	var config GameConfig
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse json config: %w", err)
		}
	}
	return &config, nil
}

// LoadGameConfig loads and validates a preset file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseGameConfig(filename, data)
	if err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
