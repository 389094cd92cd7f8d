package ide

import "github.com/lerenn/workspace-explorer/pkg/fs"

const (
	// CursorName is the name identifier for the Cursor IDE.
	CursorName = "cursor"
	// CursorCommand is the command to open Cursor.
	CursorCommand = "cursor"
)

// Cursor represents the Cursor IDE implementation.
type Cursor struct {
	fs fs.FS
}

// NewCursor creates a new Cursor IDE instance.
func NewCursor(fsys fs.FS) *Cursor {
	return &Cursor{
		fs: fsys,
	}
}

// Name returns the name of the IDE.
func (c *Cursor) Name() string {
	return CursorName
}

// IsInstalled checks if Cursor is installed on the system.
func (c *Cursor) IsInstalled() bool {
	_, err := c.fs.Which(CursorCommand)
	return err == nil
}

// OpenWorkspace opens the workspace file in a new Cursor window.
func (c *Cursor) OpenWorkspace(path string) error {
	return openInNewWindow(c.fs, CursorCommand, path)
}
