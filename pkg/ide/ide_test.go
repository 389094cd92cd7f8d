//go:build unit

package ide

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	fsmocks "github.com/lerenn/workspace-explorer/pkg/fs/mocks"
	"github.com/lerenn/workspace-explorer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const workspaceFile = "/srv/workspaces/team.code-workspace"

func TestManager_GetIDE(t *testing.T) {
	tests := []struct {
		name        string
		ideName     string
		expectError bool
	}{
		{name: "vscode", ideName: VSCodeName},
		{name: "vscodium", ideName: VSCodiumName},
		{name: "cursor", ideName: CursorName},
		{name: "dummy", ideName: DummyName},
		{name: "unknown IDE", ideName: "notepad", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			manager := NewManager(fsmocks.NewMockFS(ctrl), logger.NewNoopLogger())

			ide, err := manager.GetIDE(tt.ideName)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnsupportedIDE)
				assert.Nil(t, ide)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.ideName, ide.Name())
			}
		})
	}
}

func TestManager_Names(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := NewManager(fsmocks.NewMockFS(ctrl), nil)

	assert.Equal(t, []string{CursorName, DummyName, VSCodeName, VSCodiumName}, manager.Names())
}

func TestManager_OpenIDE(t *testing.T) {
	tests := []struct {
		name       string
		ideName    string
		setupMocks func(mockFS *fsmocks.MockFS)
		errorType  error
	}{
		{
			name:    "successful opening in a new window",
			ideName: VSCodeName,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Which(VSCodeCommand).Return("/usr/bin/code", nil)
				mockFS.EXPECT().ExecuteCommand(VSCodeCommand, NewWindowFlag, workspaceFile).Return(nil)
			},
		},
		{
			name:    "IDE not installed",
			ideName: CursorName,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Which(CursorCommand).Return("", errors.New("executable file not found in $PATH"))
			},
			errorType: ErrIDENotInstalled,
		},
		{
			name:    "IDE execution failed",
			ideName: VSCodiumName,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Which(VSCodiumCommand).Return("/usr/bin/codium", nil)
				mockFS.EXPECT().ExecuteCommand(VSCodiumCommand, NewWindowFlag, workspaceFile).
					Return(errors.New("exec format error"))
			},
			errorType: ErrIDEExecutionFailed,
		},
		{
			name:       "unsupported IDE",
			ideName:    "notepad",
			setupMocks: func(_ *fsmocks.MockFS) {},
			errorType:  ErrUnsupportedIDE,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := fsmocks.NewMockFS(ctrl)
			tt.setupMocks(mockFS)
			manager := NewManager(mockFS, logger.NewNoopLogger())

			err := manager.OpenIDE(tt.ideName, workspaceFile, true)

			if tt.errorType != nil {
				assert.ErrorIs(t, err, tt.errorType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVSCode_OpenWorkspace_RelativePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected, err := filepath.Abs("team.code-workspace")
	require.NoError(t, err)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExecuteCommand(VSCodeCommand, NewWindowFlag, expected).Return(nil)

	assert.NoError(t, NewVSCode(mockFS).OpenWorkspace("team.code-workspace"))
}

func TestDummy_OpenWorkspace(t *testing.T) {
	var buf bytes.Buffer
	dummy := NewDummyWithWriter(&buf)

	assert.True(t, dummy.IsInstalled())
	require.NoError(t, dummy.OpenWorkspace(workspaceFile))
	assert.Equal(t, "DUMMY_IDE_PATH: "+workspaceFile+"\n", buf.String())
}
