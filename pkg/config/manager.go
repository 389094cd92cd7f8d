package config

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/workspace-explorer/configs"
	"github.com/lerenn/workspace-explorer/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides access to the global settings file.
// Every read goes to disk; values are never cached between calls.
type Manager interface {
	// GetConfig loads the settings document, failing if the file is missing or invalid.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the settings document, falling back to defaults on any failure.
	GetConfigWithFallback() (Config, error)
	// GetBaseFolder returns the configured base folder, empty when unset.
	GetBaseFolder() string
	// SetBaseFolder persists the base folder, overwriting any previous value.
	SetBaseFolder(path string) error
	// GetIDE returns the configured IDE name, empty when unset.
	GetIDE() string
	// GetConfigPath returns the settings file path.
	GetConfigPath() string
	// DefaultConfig returns the default settings document.
	DefaultConfig() Config
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager backed by the settings file at configPath.
func NewManager(fsys fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

// DefaultConfigPath returns $HOME/.wsx/settings.yaml, or ./.wsx/settings.yaml without a home directory.
func DefaultConfigPath(fsys fs.FS) string {
	homeDir, err := fsys.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".wsx", "settings.yaml")
}

// GetConfig loads configuration from the settings file.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check settings file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.expandTildes(c.fs); err != nil {
		return Config{}, err
	}

	return config, nil
}

// GetConfigWithFallback loads the settings, falling back to default if not found or unreadable.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}

	return c.DefaultConfig(), nil
}

// GetBaseFolder returns the configured base folder.
func (c *realManager) GetBaseFolder() string {
	config, _ := c.GetConfigWithFallback()
	return config.Explorer.BaseFolder
}

// SetBaseFolder persists path under BaseFolderKey, keeping every other setting.
func (c *realManager) SetBaseFolder(path string) error {
	return c.update(BaseFolderKey, path)
}

// GetIDE returns the configured IDE name.
func (c *realManager) GetIDE() string {
	config, _ := c.GetConfigWithFallback()
	return config.Explorer.IDE
}

// GetConfigPath returns the settings file path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the embedded default settings document.
func (c *realManager) DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultSettingsYAML, &config); err != nil {
		return Config{}
	}
	return config
}

// update rewrites a single key under the settings file lock.
func (c *realManager) update(key, value string) error {
	unlock, err := c.lock()
	if err != nil {
		return err
	}
	defer unlock()

	config, err := c.readForUpdate()
	if err != nil {
		return err
	}

	if err := config.Set(key, value); err != nil {
		return err
	}

	return c.write(config)
}

// readForUpdate reads the raw document without expanding tildes so that
// untouched values are written back as the user typed them.
func (c *realManager) readForUpdate() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check settings file: %w", err)
	}
	if !exists {
		return c.DefaultConfig(), nil
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return config, nil
}

func (c *realManager) write(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsWrite, err)
	}

	return nil
}

func (c *realManager) lock() (func(), error) {
	if err := c.fs.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create settings directory: %w", ErrSettingsWrite, err)
	}

	unlock, err := c.fs.FileLock(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingsWrite, err)
	}

	return unlock, nil
}
