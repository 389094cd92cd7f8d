package explorer

import (
	"github.com/lerenn/workspace-explorer/pkg/explorer/consts"
	"github.com/lerenn/workspace-explorer/pkg/listing"
)

// List returns the current rows of the listing.
func (e *realExplorer) List() ([]listing.Item, error) {
	return executeWithHooksAndReturn(e, consts.ListWorkspaces, nil, "items", func() ([]listing.Item, error) {
		return e.provider.List(), nil
	})
}

// Entries returns the current workspace entries.
func (e *realExplorer) Entries() ([]listing.Entry, error) {
	return e.provider.Entries()
}

// Refresh notifies subscribers of a change.
func (e *realExplorer) Refresh() error {
	return e.executeWithHooks(consts.RefreshWorkspaces, nil, func() error {
		e.provider.Refresh()
		return nil
	})
}
