package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var errs []error

	errs = append(errs, validateLayout(config)...)
	errs = append(errs, validateLogging(config)...)
	errs = append(errs, validateKeybindings(config)...)

	return errors.Join(errs...)
}

func validateLayout(config *Config) []error {
	var errs []error
	l := config.Layout
	if l.MinRatio <= 0 || l.MinRatio > 0.5 {
		errs = append(errs, fmt.Errorf("layout.min_ratio must be in (0, 0.5], got %v", l.MinRatio))
	}
	if l.DimmedOpacity < 0 || l.DimmedOpacity > 1 {
		errs = append(errs, fmt.Errorf("layout.dimmed_opacity must be in [0, 1], got %v", l.DimmedOpacity))
	}
	if l.ResizeStep <= 0 || l.ResizeStep > 0.5 {
		errs = append(errs, fmt.Errorf("layout.resize_step must be in (0, 0.5], got %v", l.ResizeStep))
	}
	return errs
}

func validateLogging(config *Config) []error {
	var errs []error
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of %v, got %q", validLogLevels, config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of %v, got %q", validLogFormats, config.Logging.Format))
	}
	return errs
}

// validateKeybindings rejects a key bound to two hotkeys. Unknown hotkey
// names are left to the input layer, which logs and skips them.
func validateKeybindings(config *Config) []error {
	var errs []error
	owner := make(map[string]string)

	names := make([]string, 0, len(config.Keybindings))
	for name := range config.Keybindings {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		for _, key := range config.Keybindings[name] {
			if prev, ok := owner[key]; ok && prev != name {
				errs = append(errs, fmt.Errorf("keybindings: key %q bound to both %s and %s", key, prev, name))
				continue
			}
			owner[key] = name
		}
	}
	return errs
}
