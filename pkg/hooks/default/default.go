// Package defaulthooks provides the default hook set of the workspace explorer.
package defaulthooks

import (
	"github.com/lerenn/workspace-explorer/pkg/explorer/consts"
	"github.com/lerenn/workspace-explorer/pkg/hooks"
	"github.com/lerenn/workspace-explorer/pkg/ide"
	"github.com/lerenn/workspace-explorer/pkg/logger"
)

// Params contains the collaborators of the default hooks.
type Params struct {
	// Refresher is refreshed after the base folder changed.
	Refresher hooks.Refresher
	// IDEManager opens workspaces after OpenWorkspace.
	IDEManager ide.ManagerInterface
	// Logger, when set, traces every operation.
	Logger logger.Logger
}

// NewDefaultHooksManager creates a hook manager with the refresh, IDE opening and, optionally, logging hooks.
func NewDefaultHooksManager(params Params) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if params.Refresher != nil {
		if err := hm.RegisterPostHook(consts.SetBaseFolder, hooks.NewRefreshHook(params.Refresher)); err != nil {
			return nil, err
		}
	}

	if params.IDEManager != nil {
		if err := hm.RegisterPostHook(consts.OpenWorkspace, hooks.NewIDEOpeningHook(params.IDEManager)); err != nil {
			return nil, err
		}
	}

	if params.Logger != nil {
		if err := hooks.NewLoggingHook(params.Logger).RegisterForOperations(hm, consts.All()...); err != nil {
			return nil, err
		}
	}

	return hm, nil
}
