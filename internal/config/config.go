// Package config defines all configuration structures for the wc-kb tools.
// No I/O or parsing logic lives here — only plain data types and validation.
package config

import (
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// KBConfig locates the knowledge-base document and its sequence data.
type KBConfig struct {
	// Path is the knowledge-base YAML document.
	Path string `mapstructure:"path"`
	// SequenceDir is prepended to relative FASTA paths referenced by
	// chromosome entries in the document.
	SequenceDir string `mapstructure:"sequence_dir"`
}

// ValidateConfig holds validation tunables.
type ValidateConfig struct {
	// CheckBalance enables elemental mass-balance checking of reactions.
	CheckBalance bool `mapstructure:"check_balance"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the wckb command.
type Config struct {
	KB       KBConfig       `mapstructure:"kb"`
	Validate ValidateConfig `mapstructure:"validate"`
	Log      LogConfig      `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// CheckValid performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) CheckValid() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	return nil
}
