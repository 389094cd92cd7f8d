package hooks

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/pkg/ide"
)

// Parameter keys read by IDEOpeningHook.
const (
	ParamIDEName       = "ideName"
	ParamWorkspacePath = "workspacePath"
	ParamVerbose       = "verbose"
)

// IDEOpeningHook opens the workspace file of a successful operation in an editor window.
type IDEOpeningHook struct {
	ideManager ide.ManagerInterface
}

// NewIDEOpeningHook creates a new IDEOpeningHook instance.
func NewIDEOpeningHook(ideManager ide.ManagerInterface) *IDEOpeningHook {
	return &IDEOpeningHook{ideManager: ideManager}
}

// Name returns the hook name.
func (h *IDEOpeningHook) Name() string {
	return "ide-opening"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *IDEOpeningHook) Priority() int {
	return 150
}

// PostExecute opens the IDE named by the parameters on the workspace path.
// Nothing happens when the path is empty.
func (h *IDEOpeningHook) PostExecute(ctx *HookContext) error {
	if ctx.Error != nil {
		return nil
	}

	path, _ := ctx.Parameters[ParamWorkspacePath].(string)
	if path == "" {
		return nil
	}

	ideName, _ := ctx.Parameters[ParamIDEName].(string)
	if ideName == "" {
		ideName = ide.DefaultIDE
	}
	verbose, _ := ctx.Parameters[ParamVerbose].(bool)

	if err := h.ideManager.OpenIDE(ideName, path, verbose); err != nil {
		return fmt.Errorf("failed to open IDE: %w", err)
	}

	ctx.Results["openedWith"] = ideName
	return nil
}
