//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateFolder(t *testing.T, f FolderPicker, msg tea.Msg) (FolderPicker, tea.Cmd) {
	t.Helper()
	next, cmd := f.Update(msg)
	picker, ok := next.(FolderPicker)
	require.True(t, ok)
	return picker, cmd
}

func TestNewFolderPicker_StartDirectory(t *testing.T) {
	dir := t.TempDir()

	f := NewFolderPicker(dir)
	assert.Equal(t, dir, f.picker.CurrentDirectory)
	assert.True(t, f.picker.DirAllowed)
	assert.False(t, f.picker.FileAllowed)

	f = NewFolderPicker(dir + "/missing")
	assert.NotEqual(t, dir+"/missing", f.picker.CurrentDirectory)
}

func TestFolderPicker_SelectCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	f := NewFolderPicker(dir)

	f, cmd := updateFolder(t, f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(".")})

	path, ok := f.Selected()
	assert.True(t, ok)
	assert.Equal(t, dir, path)
	assert.True(t, f.Done())
	assert.NotNil(t, cmd)
	assert.Empty(t, f.View())
}

func TestFolderPicker_Cancel(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		f := NewFolderPicker(t.TempDir())
		f, cmd := updateFolder(t, f, key)

		_, ok := f.Selected()
		assert.False(t, ok)
		assert.True(t, f.Done())
		assert.NotNil(t, cmd)
	}
}

func TestFolderPicker_IgnoresInputWhenDone(t *testing.T) {
	dir := t.TempDir()
	f := NewFolderPicker(dir)
	f, _ = updateFolder(t, f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	f, cmd := updateFolder(t, f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(".")})
	_, ok := f.Selected()
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestFolderPicker_View(t *testing.T) {
	dir := t.TempDir()
	f := NewFolderPicker(dir)

	view := f.View()
	assert.Contains(t, view, "Choose the base folder")
	assert.Contains(t, view, dir)
}
