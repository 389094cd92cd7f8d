package ide

import "github.com/lerenn/workspace-explorer/pkg/fs"

const (
	// VSCodiumName is the name identifier for the VSCodium IDE.
	VSCodiumName = "vscodium"
	// VSCodiumCommand is the command to open VSCodium.
	VSCodiumCommand = "codium"
)

// VSCodium represents the VSCodium IDE implementation.
type VSCodium struct {
	fs fs.FS
}

// NewVSCodium creates a new VSCodium IDE instance.
func NewVSCodium(fsys fs.FS) *VSCodium {
	return &VSCodium{
		fs: fsys,
	}
}

// Name returns the name of the IDE.
func (v *VSCodium) Name() string {
	return VSCodiumName
}

// IsInstalled checks if VSCodium is installed on the system.
func (v *VSCodium) IsInstalled() bool {
	_, err := v.fs.Which(VSCodiumCommand)
	return err == nil
}

// OpenWorkspace opens the workspace file in a new VSCodium window.
func (v *VSCodium) OpenWorkspace(path string) error {
	return openInNewWindow(v.fs, VSCodiumCommand, path)
}
