// Package config provides the global settings store of the workspace explorer.
package config

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/pkg/fs"
)

// Setting keys, in dotted form, owned by the explorer.
const (
	// SettingsSection is the top-level YAML section holding explorer settings.
	SettingsSection = "workspaceExplorerModern"
	// BaseFolderKey is the key of the folder scanned for workspace files.
	BaseFolderKey = SettingsSection + ".baseFolder"
	// IDEKey is the key of the IDE used to open workspace files.
	IDEKey = SettingsSection + ".ide"
)

// Config represents the global settings document.
// Top-level sections other than the explorer's are kept untouched on save.
type Config struct {
	Explorer Settings               `yaml:"workspaceExplorerModern"`
	Extra    map[string]interface{} `yaml:",inline"`
}

// Settings holds the explorer section of the settings document.
type Settings struct {
	BaseFolder string                 `yaml:"baseFolder,omitempty"`
	IDE        string                 `yaml:"ide,omitempty"`
	Extra      map[string]interface{} `yaml:",inline"`
}

// Set stores value under a dotted key.
func (c *Config) Set(key, value string) error {
	switch key {
	case BaseFolderKey:
		c.Explorer.BaseFolder = value
	case IDEKey:
		c.Explorer.IDE = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// expandTildes expands ~ in path settings.
func (c *Config) expandTildes(fsys fs.FS) error {
	if c.Explorer.BaseFolder == "" {
		return nil
	}

	expanded, err := fsys.ExpandPath(c.Explorer.BaseFolder)
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", BaseFolderKey, err)
	}
	c.Explorer.BaseFolder = expanded

	return nil
}
