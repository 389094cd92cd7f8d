package listing

import "errors"

// Error definitions for listing package. Entries returns them; List turns them into placeholders.
var (
	ErrBaseFolderUnset = errors.New("no base folder set")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrReadFolder      = errors.New("failed to read folder")
	ErrNoWorkspaces    = errors.New("no workspace files found")
)
