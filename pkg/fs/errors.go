// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrFileLock is returned when a lock file cannot be acquired.
	ErrFileLock = errors.New("lock")

	// ErrHomeDir is returned when the home directory cannot be determined.
	ErrHomeDir = errors.New("failed to determine home directory")
)
