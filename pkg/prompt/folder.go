package prompt

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// FolderPicker is a directory-only, single selection picker.
// It can run on its own or be embedded in another Bubble Tea model.
type FolderPicker struct {
	picker    filepicker.Model
	selected  string
	done      bool
	cancelled bool
}

// NewFolderPicker creates a picker browsing from start, or the home directory when start is not a directory.
func NewFolderPicker(start string) FolderPicker {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = 15
	fp.CurrentDirectory = pickerStart(start)

	return FolderPicker{picker: fp}
}

func pickerStart(start string) string {
	start = strings.TrimSpace(start)
	if start != "" {
		if info, err := os.Stat(start); err == nil && info.IsDir() {
			return start
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// Init reads the start directory.
func (f FolderPicker) Init() tea.Cmd {
	return f.picker.Init()
}

// Update handles keys: enter picks the highlighted directory, "." picks the
// directory being browsed, q or ctrl+c cancels.
func (f FolderPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.done {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			f.done = true
			f.cancelled = true
			return f, tea.Quit
		case ".":
			f.done = true
			f.selected = f.picker.CurrentDirectory
			return f, tea.Quit
		}
	}

	var cmd tea.Cmd
	f.picker, cmd = f.picker.Update(msg)

	if ok, path := f.picker.DidSelectFile(msg); ok {
		f.done = true
		f.selected = path
		return f, tea.Quit
	}

	return f, cmd
}

// View renders the picker.
func (f FolderPicker) View() string {
	if f.done {
		return ""
	}

	var s strings.Builder
	s.WriteString("? Choose the base folder: " + f.picker.CurrentDirectory + "\n\n")
	s.WriteString(f.picker.View())
	s.WriteString("\nEnter: choose highlighted folder  .: choose current folder  q: cancel")
	return s.String()
}

// Selected returns the chosen directory and whether one was chosen.
func (f FolderPicker) Selected() (string, bool) {
	return f.selected, f.done && !f.cancelled && f.selected != ""
}

// Done reports whether the user chose or cancelled.
func (f FolderPicker) Done() bool {
	return f.done
}
