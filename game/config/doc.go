// Package config provides rule preset management for the solitaire server.
//
// The config package handles:
//   - Loading presets from JSON and YAML files
//   - Preset validation
//   - Default preset selection
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets live in the configs directory as .json, .yaml or .yml files. The
// file name without its extension is the preset id used when creating a
// session. Each preset defines:
//   - name and description
//   - seed, an optional fixed deal
//   - allow_play_after_win, whether a finished game still accepts moves
//   - messages, overriding the status texts shown to the player
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("relaxed")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// The default preset is classic when present, otherwise the first preset
// found, otherwise engine.DefaultConfig.
package config
