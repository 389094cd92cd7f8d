package ide

import "github.com/lerenn/workspace-explorer/pkg/fs"

const (
	// VSCodeName is the name identifier for the VS Code IDE.
	VSCodeName = "vscode"
	// VSCodeCommand is the command to open VS Code.
	VSCodeCommand = "code"
)

// VSCode represents the VS Code IDE implementation.
type VSCode struct {
	fs fs.FS
}

// NewVSCode creates a new VS Code IDE instance.
func NewVSCode(fsys fs.FS) *VSCode {
	return &VSCode{
		fs: fsys,
	}
}

// Name returns the name of the IDE.
func (v *VSCode) Name() string {
	return VSCodeName
}

// IsInstalled checks if VS Code is installed on the system.
func (v *VSCode) IsInstalled() bool {
	_, err := v.fs.Which(VSCodeCommand)
	return err == nil
}

// OpenWorkspace opens the workspace file in a new VS Code window.
func (v *VSCode) OpenWorkspace(path string) error {
	return openInNewWindow(v.fs, VSCodeCommand, path)
}
