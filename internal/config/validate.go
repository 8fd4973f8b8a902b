package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
}

// Validate checks that the configuration values are usable.
func Validate(cfg *Configuration) error {
	if strings.TrimSpace(cfg.ChangelogFile) == "" {
		return &ValidationError{Field: "changelog_file", Message: "must not be empty"}
	}
	if cfg.CommitLimit <= 0 {
		return &ValidationError{
			Field:   "commit_limit",
			Message: fmt.Sprintf("must be positive, got %d", cfg.CommitLimit),
		}
	}
	return nil
}
