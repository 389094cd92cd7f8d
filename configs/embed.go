// Package configs provides embedded configuration files for the workspace explorer.
package configs

import _ "embed"

// DefaultSettingsYAML contains the settings document used when no settings file exists.
//
//go:embed default.yaml
var DefaultSettingsYAML []byte
