//go:build unit

package listing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	fsmocks "github.com/lerenn/workspace-explorer/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticBaseFolder string

func (s staticBaseFolder) GetBaseFolder() string { return string(s) }

type fakeDirEntry struct {
	name string
	dir  bool
}

func (f fakeDirEntry) Name() string { return f.name }
func (f fakeDirEntry) IsDir() bool  { return f.dir }
func (f fakeDirEntry) Type() fs.FileMode {
	if f.dir {
		return fs.ModeDir
	}
	return 0
}
func (f fakeDirEntry) Info() (fs.FileInfo, error) { return nil, errors.New("not implemented") }

func files(names ...string) []os.DirEntry {
	entries := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, fakeDirEntry{name: name})
	}
	return entries
}

func TestProvider_List(t *testing.T) {
	base := filepath.Join("/srv", "workspaces")

	tests := []struct {
		name       string
		baseFolder string
		setupMocks func(mockFS *fsmocks.MockFS)
		expected   []Item
	}{
		{
			name:       "base folder unset",
			baseFolder: "",
			setupMocks: func(_ *fsmocks.MockFS) {},
			expected: []Item{NewPlaceholderItem(Placeholder{
				Kind:    KindUnset,
				Message: "No base folder set. Run: wsx set-base-folder",
			})},
		},
		{
			name:       "base folder missing",
			baseFolder: base,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Exists(base).Return(false, nil)
			},
			expected: []Item{NewPlaceholderItem(Placeholder{
				Kind:    KindNotFound,
				Message: "Folder not found: " + base,
			})},
		},
		{
			name:       "existence check fails",
			baseFolder: base,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Exists(base).Return(false, errors.New("permission denied"))
			},
			expected: []Item{NewPlaceholderItem(Placeholder{
				Kind:    KindReadError,
				Message: "Error reading folder: permission denied",
			})},
		},
		{
			name:       "read fails",
			baseFolder: base,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Exists(base).Return(true, nil)
				mockFS.EXPECT().ReadDir(base).Return(nil, errors.New("input/output error"))
			},
			expected: []Item{NewPlaceholderItem(Placeholder{
				Kind:    KindReadError,
				Message: "Error reading folder: input/output error",
			})},
		},
		{
			name:       "no workspace files",
			baseFolder: base,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Exists(base).Return(true, nil)
				mockFS.EXPECT().ReadDir(base).Return(files("readme.md", "settings.json"), nil)
			},
			expected: []Item{NewPlaceholderItem(Placeholder{
				Kind:    KindEmpty,
				Message: "No .code-workspace files found.",
			})},
		},
		{
			name:       "suffix matched case-insensitively",
			baseFolder: base,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Exists(base).Return(true, nil)
				mockFS.EXPECT().ReadDir(base).Return(files("c.CODE-WORKSPACE", "b.txt", "a.code-workspace"), nil)
			},
			expected: []Item{
				NewEntryItem(Entry{DisplayName: "a", FullPath: filepath.Join(base, "a.code-workspace"), FileName: "a.code-workspace"}),
				NewEntryItem(Entry{DisplayName: "c", FullPath: filepath.Join(base, "c.CODE-WORKSPACE"), FileName: "c.CODE-WORKSPACE"}),
			},
		},
		{
			name:       "directories are skipped",
			baseFolder: base,
			setupMocks: func(mockFS *fsmocks.MockFS) {
				mockFS.EXPECT().Exists(base).Return(true, nil)
				mockFS.EXPECT().ReadDir(base).Return([]os.DirEntry{
					fakeDirEntry{name: "archive.code-workspace", dir: true},
					fakeDirEntry{name: "team.code-workspace"},
				}, nil)
			},
			expected: []Item{
				NewEntryItem(Entry{DisplayName: "team", FullPath: filepath.Join(base, "team.code-workspace"), FileName: "team.code-workspace"}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := fsmocks.NewMockFS(ctrl)
			tt.setupMocks(mockFS)

			provider := NewProvider(NewProviderParams{
				FS:         mockFS,
				BaseFolder: staticBaseFolder(tt.baseFolder),
			})

			assert.Equal(t, tt.expected, provider.List())
		})
	}
}

func TestProvider_List_SortedByDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/ws").Return(true, nil)
	mockFS.EXPECT().ReadDir("/ws").Return(files("zeta.code-workspace", "Beta.code-workspace", "alpha.code-workspace"), nil)

	provider := NewProvider(NewProviderParams{FS: mockFS, BaseFolder: staticBaseFolder("/ws")})

	items := provider.List()
	require.Len(t, items, 3)
	assert.Equal(t, "alpha", items[0].Label)
	assert.Equal(t, "Beta", items[1].Label)
	assert.Equal(t, "zeta", items[2].Label)
}

func TestProvider_Entries_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	provider := NewProvider(NewProviderParams{FS: mockFS, BaseFolder: staticBaseFolder("")})

	_, err := provider.Entries()
	assert.ErrorIs(t, err, ErrBaseFolderUnset)

	mockFS.EXPECT().Exists("/gone").Return(false, nil)
	provider = NewProvider(NewProviderParams{FS: mockFS, BaseFolder: staticBaseFolder("/gone")})
	_, err = provider.Entries()
	assert.ErrorIs(t, err, ErrFolderNotFound)

	mockFS.EXPECT().Exists("/empty").Return(true, nil)
	mockFS.EXPECT().ReadDir("/empty").Return(nil, nil)
	provider = NewProvider(NewProviderParams{FS: mockFS, BaseFolder: staticBaseFolder("/empty")})
	_, err = provider.Entries()
	assert.ErrorIs(t, err, ErrNoWorkspaces)
}

func TestProvider_Refresh(t *testing.T) {
	provider := NewProvider(NewProviderParams{BaseFolder: staticBaseFolder("")})

	count := 0
	unsubscribe := provider.Subscribe(func() { count++ })

	provider.Refresh()
	provider.Refresh()
	unsubscribe()
	provider.Refresh()

	assert.Equal(t, 2, count)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "team", DisplayName("team.code-workspace"))
	assert.Equal(t, "Team", DisplayName("Team.Code-Workspace"))
	assert.Equal(t, "my.project", DisplayName("my.project.code-workspace"))
	assert.Equal(t, ".code-workspace", DisplayName(".code-workspace"))
	assert.Equal(t, "notes.txt", DisplayName("notes.txt"))
}

func TestItem_IsPlaceholder(t *testing.T) {
	entry := NewEntryItem(Entry{DisplayName: "a", FullPath: "/a.code-workspace", FileName: "a.code-workspace"})
	placeholder := NewPlaceholderItem(Placeholder{Kind: KindEmpty, Message: "none"})

	assert.False(t, entry.IsPlaceholder())
	assert.True(t, entry.Selectable)
	assert.Equal(t, "/a.code-workspace", entry.ID)
	assert.True(t, placeholder.IsPlaceholder())
	assert.False(t, placeholder.Selectable)
	assert.Equal(t, "placeholder:empty", placeholder.ID)
}
