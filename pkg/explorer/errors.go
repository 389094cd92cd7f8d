// Package explorer provides the workspace explorer operations and error definitions.
package explorer

import "errors"

// Error definitions for explorer package.
var (
	// ErrBaseFolderEmpty is returned when setting an empty base folder.
	ErrBaseFolderEmpty = errors.New("base folder cannot be empty")
	// ErrBaseFolderNotDirectory is returned when the base folder is an existing non-directory.
	ErrBaseFolderNotDirectory = errors.New("base folder is not a directory")
	// ErrWorkspaceNotFound is returned when no workspace file matches a name.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrWorkspaceNameEmpty is returned when opening an empty workspace name.
	ErrWorkspaceNameEmpty = errors.New("workspace name cannot be empty")
)
