package config

import "errors"

// Error definitions for config package.
var (
	// Settings file errors.
	ErrConfigNotInitialized = errors.New("settings file not found")
	ErrConfigFileParse      = errors.New("failed to parse settings file")
	ErrSettingsWrite        = errors.New("failed to write settings file")

	// Settings key errors.
	ErrUnknownKey = errors.New("unknown setting key")
)
