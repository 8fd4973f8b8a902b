// Package config holds the fixed settings of changelog-updater in a koanf
// instance. The values are seeded from GetDefaults only: the tool has no
// config file, environment or flag surface.
package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// Configuration represents the changelog-updater settings
type Configuration struct {
	// ChangelogFile is the document to update, relative to the working directory.
	ChangelogFile string `koanf:"changelog_file"`
	// CommitLimit is the number of non-merge commits read from HEAD per run.
	CommitLimit int `koanf:"commit_limit"`
}

// Load builds the configuration from the built-in defaults.
func Load() (*Configuration, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

// finalizeConfig unmarshals and validates the loaded values
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
