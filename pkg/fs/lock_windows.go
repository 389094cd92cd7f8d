//go:build windows

package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileLock creates filename.lock exclusively and returns the release function.
// An existing lock file means another process holds the lock.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, err
	}

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileLock, lockPath, err)
	}

	return func() {
		_ = lockFile.Close()
		_ = os.Remove(lockPath)
	}, nil
}
