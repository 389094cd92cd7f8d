//go:build unit

package defaulthooks

import (
	"bytes"
	"testing"

	"github.com/lerenn/workspace-explorer/pkg/explorer/consts"
	"github.com/lerenn/workspace-explorer/pkg/hooks"
	idemocks "github.com/lerenn/workspace-explorer/pkg/ide/mocks"
	"github.com/lerenn/workspace-explorer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingRefresher struct{ count int }

func (c *countingRefresher) Refresh() { c.count++ }

func newContext(operation string, params map[string]interface{}) *hooks.HookContext {
	return &hooks.HookContext{
		OperationName: operation,
		Parameters:    params,
		Results:       map[string]interface{}{},
		Metadata:      map[string]interface{}{},
	}
}

func TestNewDefaultHooksManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := &countingRefresher{}
	ideManager := idemocks.NewMockManagerInterface(ctrl)
	var buf bytes.Buffer

	hm, err := NewDefaultHooksManager(Params{
		Refresher:  refresher,
		IDEManager: ideManager,
		Logger:     logger.NewWriterLogger(&buf),
	})
	require.NoError(t, err)

	require.NoError(t, hm.ExecutePostHooks(consts.SetBaseFolder, newContext(consts.SetBaseFolder, nil)))
	assert.Equal(t, 1, refresher.count)

	ideManager.EXPECT().OpenIDE("vscode", "/ws/a.code-workspace", false).Return(nil)
	require.NoError(t, hm.ExecutePostHooks(consts.OpenWorkspace, newContext(consts.OpenWorkspace, map[string]interface{}{
		hooks.ParamWorkspacePath: "/ws/a.code-workspace",
		hooks.ParamIDEName:       "vscode",
	})))

	require.NoError(t, hm.ExecutePostHooks(consts.ListWorkspaces, newContext(consts.ListWorkspaces, nil)))
	assert.Equal(t, 1, refresher.count)
	assert.Contains(t, buf.String(), "Operation completed: ListWorkspaces")
}

func TestNewDefaultHooksManager_Empty(t *testing.T) {
	hm, err := NewDefaultHooksManager(Params{})
	require.NoError(t, err)

	assert.NoError(t, hm.ExecutePostHooks(consts.SetBaseFolder, newContext(consts.SetBaseFolder, nil)))
}
