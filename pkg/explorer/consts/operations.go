// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// Base folder operations.
	SetBaseFolder = "SetBaseFolder"

	// Listing operations.
	ListWorkspaces    = "ListWorkspaces"
	RefreshWorkspaces = "RefreshWorkspaces"

	// Opening operations.
	OpenWorkspace = "OpenWorkspace"
)

// All returns every operation name.
func All() []string {
	return []string{
		SetBaseFolder,
		ListWorkspaces,
		RefreshWorkspaces,
		OpenWorkspace,
	}
}
