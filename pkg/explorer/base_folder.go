package explorer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/workspace-explorer/pkg/explorer/consts"
	"github.com/lerenn/workspace-explorer/pkg/prompt"
)

// GetBaseFolder returns the configured base folder.
func (e *realExplorer) GetBaseFolder() string {
	return e.deps.Config.GetBaseFolder()
}

// SetBaseFolder stores path as the base folder.
func (e *realExplorer) SetBaseFolder(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrBaseFolderEmpty
	}

	params := map[string]interface{}{
		"path": path,
	}

	return executeWithHooksAndReturn(e, consts.SetBaseFolder, params, "baseFolder", func() (string, error) {
		resolved, err := resolveBaseFolder(path)
		if err != nil {
			return "", err
		}

		if _, err := e.baseFolderExists(resolved); err != nil {
			return "", err
		}

		if err := e.deps.Config.SetBaseFolder(resolved); err != nil {
			return "", fmt.Errorf("failed to set base folder: %w", err)
		}

		e.VerbosePrint("Base folder set: %s", resolved)
		return resolved, nil
	})
}

// ConfirmAndSetBaseFolder asks before storing a missing folder.
func (e *realExplorer) ConfirmAndSetBaseFolder(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrBaseFolderEmpty
	}

	resolved, err := resolveBaseFolder(path)
	if err != nil {
		return "", err
	}

	exists, err := e.baseFolderExists(resolved)
	if err != nil {
		return "", err
	}

	if !exists {
		message := fmt.Sprintf("Folder %s does not exist. Set it anyway?", resolved)
		confirmed, err := e.deps.Prompt.PromptForConfirmation(message, false)
		if errors.Is(err, prompt.ErrCancelled) {
			confirmed, err = false, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to confirm base folder: %w", err)
		}
		if !confirmed {
			e.VerbosePrint("Base folder %s not set", resolved)
			return "", nil
		}
	}

	return e.SetBaseFolder(path)
}

// baseFolderExists reports whether path exists, failing when it exists but is not a directory.
func (e *realExplorer) baseFolderExists(path string) (bool, error) {
	expanded, err := e.deps.FS.ExpandPath(path)
	if err != nil {
		return false, fmt.Errorf("failed to expand %s: %w", path, err)
	}

	exists, err := e.deps.FS.Exists(expanded)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return false, nil
	}

	isDir, err := e.deps.FS.IsDir(expanded)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !isDir {
		return false, fmt.Errorf("%w: %s", ErrBaseFolderNotDirectory, path)
	}

	return true, nil
}

// resolveBaseFolder makes path absolute. Paths under the home directory (~ and ~/...)
// are kept as typed and expanded on read.
func resolveBaseFolder(path string) (string, error) {
	if isHomePath(path) {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

func isHomePath(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator))
}

// PickBaseFolder asks the user for a directory and stores it.
func (e *realExplorer) PickBaseFolder() (string, error) {
	path, err := e.deps.Prompt.PromptForBaseFolder(e.GetBaseFolder())
	if errors.Is(err, prompt.ErrCancelled) {
		e.VerbosePrint("Base folder selection cancelled")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to pick base folder: %w", err)
	}

	return e.SetBaseFolder(path)
}
