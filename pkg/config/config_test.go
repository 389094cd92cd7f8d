//go:build unit

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/workspace-explorer/pkg/fs"
	fsmocks "github.com/lerenn/workspace-explorer/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestManager_GetBaseFolder(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "base folder set",
			content:  "workspaceExplorerModern:\n  baseFolder: /srv/workspaces\n",
			expected: "/srv/workspaces",
		},
		{
			name:     "section without base folder",
			content:  "workspaceExplorerModern:\n  ide: cursor\n",
			expected: "",
		},
		{
			name:     "malformed file",
			content:  "workspaceExplorerModern: [\n",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			manager := NewManager(fs.NewFS(), path)

			assert.Equal(t, tt.expected, manager.GetBaseFolder())
		})
	}
}

func TestManager_GetBaseFolder_MissingFile(t *testing.T) {
	manager := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "missing", "settings.yaml"))

	assert.Equal(t, "", manager.GetBaseFolder())

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestManager_GetBaseFolder_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workspaceExplorerModern:\n  baseFolder: ~/workspaces\n"), 0644))

	manager := NewManager(fs.NewFS(), path)

	assert.Equal(t, filepath.Join(home, "workspaces"), manager.GetBaseFolder())
}

func TestManager_SetBaseFolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	manager := NewManager(fs.NewFS(), path)

	require.NoError(t, manager.SetBaseFolder("/first"))
	assert.Equal(t, "/first", manager.GetBaseFolder())

	// A second write overwrites the previous value without any cache in between
	require.NoError(t, manager.SetBaseFolder("/second"))
	assert.Equal(t, "/second", manager.GetBaseFolder())
}

func TestManager_SetBaseFolder_PreservesOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "editor:\n  fontSize: 14\nworkspaceExplorerModern:\n  ide: cursor\n  baseFolder: /old\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	manager := NewManager(fs.NewFS(), path)
	require.NoError(t, manager.SetBaseFolder("/new"))

	cfg, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/new", cfg.Explorer.BaseFolder)
	assert.Equal(t, "cursor", cfg.Explorer.IDE)
	assert.Contains(t, cfg.Extra, "editor")
	assert.Equal(t, "cursor", manager.GetIDE())
}

func TestManager_SetBaseFolder_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workspaceExplorerModern: [\n"), 0644))

	manager := NewManager(fs.NewFS(), path)

	err := manager.SetBaseFolder("/new")
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_SetBaseFolder_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, "/cfg/settings.yaml")

	unlocked := false
	mockFS.EXPECT().MkdirAll("/cfg", os.FileMode(0755)).Return(nil)
	mockFS.EXPECT().FileLock("/cfg/settings.yaml").Return(func() { unlocked = true }, nil)
	mockFS.EXPECT().Exists("/cfg/settings.yaml").Return(false, nil)
	mockFS.EXPECT().WriteFileAtomic("/cfg/settings.yaml", gomock.Any(), os.FileMode(0644)).
		Return(errors.New("read-only file system"))

	err := manager.SetBaseFolder("/srv/workspaces")

	assert.ErrorIs(t, err, ErrSettingsWrite)
	assert.True(t, unlocked)
}

func TestManager_SetBaseFolder_LockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, "/cfg/settings.yaml")

	mockFS.EXPECT().MkdirAll("/cfg", os.FileMode(0755)).Return(nil)
	mockFS.EXPECT().FileLock("/cfg/settings.yaml").Return(nil,
		fmt.Errorf("%w: %w", fs.ErrFileLock, errors.New("resource temporarily unavailable")))

	err := manager.SetBaseFolder("/srv/workspaces")

	assert.ErrorIs(t, err, ErrSettingsWrite)
	assert.ErrorIs(t, err, fs.ErrFileLock)
}

func TestConfig_Set(t *testing.T) {
	var cfg Config

	require.NoError(t, cfg.Set(BaseFolderKey, "/srv"))
	require.NoError(t, cfg.Set(IDEKey, "vscodium"))

	assert.Equal(t, "/srv", cfg.Explorer.BaseFolder)
	assert.Equal(t, "vscodium", cfg.Explorer.IDE)
	assert.ErrorIs(t, cfg.Set("other", "x"), ErrUnknownKey)
}

func TestDefaultConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().GetHomeDir().Return("/home/dev", nil)

	assert.Equal(t, filepath.Join("/home/dev", ".wsx", "settings.yaml"), DefaultConfigPath(mockFS))
}

func TestDefaultConfig(t *testing.T) {
	manager := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "settings.yaml"))

	cfg := manager.DefaultConfig()
	assert.Empty(t, cfg.Explorer.BaseFolder)
	assert.Empty(t, cfg.Explorer.IDE)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), SettingsSection)
}
