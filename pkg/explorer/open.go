package explorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lerenn/workspace-explorer/pkg/explorer/consts"
	"github.com/lerenn/workspace-explorer/pkg/hooks"
	"github.com/lerenn/workspace-explorer/pkg/ide"
	"github.com/lerenn/workspace-explorer/pkg/listing"
	"github.com/lerenn/workspace-explorer/pkg/prompt"
)

// Open opens the entry in a new IDE window. An entry without path is ignored.
func (e *realExplorer) Open(entry listing.Entry, ideName string) error {
	if entry.FullPath == "" {
		e.VerbosePrint("No workspace path given, nothing to open")
		return nil
	}

	params := map[string]interface{}{
		"name":                   entry.DisplayName,
		hooks.ParamWorkspacePath: entry.FullPath,
		hooks.ParamIDEName:       e.resolveIDE(ideName),
		hooks.ParamVerbose:       e.verbose,
	}

	return e.executeWithHooks(consts.OpenWorkspace, params, func() error {
		e.VerbosePrint("Opening workspace: %s (%s)", entry.DisplayName, entry.FullPath)
		return nil
	})
}

// OpenByName opens the workspace matching name, case-insensitively, on its display name or file name.
func (e *realExplorer) OpenByName(name, ideName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrWorkspaceNameEmpty
	}

	entries, err := e.Entries()
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	entry, found := findEntry(entries, name)
	if !found {
		return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, name)
	}

	return e.Open(entry, ideName)
}

// SelectAndOpen prompts for a workspace and opens it. Cancelling is not an error.
func (e *realExplorer) SelectAndOpen(ideName string) error {
	entries, err := e.Entries()
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	choices := make([]prompt.Choice, 0, len(entries))
	for _, entry := range entries {
		choices = append(choices, prompt.Choice{
			Name:        entry.DisplayName,
			Description: entry.FileName,
			Path:        entry.FullPath,
		})
	}

	choice, err := e.deps.Prompt.PromptSelectWorkspace(choices)
	if errors.Is(err, prompt.ErrCancelled) {
		e.VerbosePrint("Workspace selection cancelled")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to select workspace: %w", err)
	}

	for _, entry := range entries {
		if entry.FullPath == choice.Path {
			return e.Open(entry, ideName)
		}
	}
	return fmt.Errorf("%w: %s", ErrWorkspaceNotFound, choice.Name)
}

// resolveIDE picks the IDE from the argument, then the settings, then the default.
func (e *realExplorer) resolveIDE(ideName string) string {
	if ideName != "" {
		return ideName
	}
	if configured := e.deps.Config.GetIDE(); configured != "" {
		return configured
	}
	return ide.DefaultIDE
}

// findEntry returns the first entry whose display name or file name equals name, ignoring case.
func findEntry(entries []listing.Entry, name string) (listing.Entry, bool) {
	for _, entry := range entries {
		if strings.EqualFold(entry.DisplayName, name) || strings.EqualFold(entry.FileName, name) {
			return entry, true
		}
	}
	return listing.Entry{}, false
}
