package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tacticlens/internal/dict"
	"tacticlens/internal/models"
)

// PresetsConfig represents the structure of the tactics.yaml file: a
// deployment-supplied replacement for the built-in seed dictionaries.
type PresetsConfig struct {
	Tactics []TacticPreset `yaml:"tactics"`
}

// TacticPreset defines one seed tactic in the YAML config.
type TacticPreset struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadPresets loads the YAML tactic preset file. Path is determined by the
// CONFIG_FILE env var, defaulting to "tactics.yaml". Returns nil without
// error if the file doesn't exist; the built-in defaults apply then.
func LoadPresets() (*PresetsConfig, error) {
	path := getEnv("CONFIG_FILE", "tactics.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Preset file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SeedTactics converts the presets to the model form used to seed new
// session stores. The list is run through the dictionary store's own rules
// so a bad preset (empty or duplicate name) fails at startup instead of
// being silently dropped when sessions seed.
func (c *PresetsConfig) SeedTactics() ([]models.Tactic, error) {
	if c == nil {
		return nil, nil
	}
	store := dict.New()
	for _, p := range c.Tactics {
		if err := store.AddTactic(p.Name, p.Keywords); err != nil {
			return nil, fmt.Errorf("tactic preset %q: %w", p.Name, err)
		}
	}
	return store.Tactics(), nil
}
