// Package treeview renders the workspace listing as an interactive terminal view.
package treeview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/workspace-explorer/pkg/explorer"
	"github.com/lerenn/workspace-explorer/pkg/listing"
	"github.com/lerenn/workspace-explorer/pkg/prompt"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	descriptionStyle = lipgloss.NewStyle().Faint(true)
	placeholderStyle = lipgloss.NewStyle().Italic(true).Faint(true)
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

var icons = map[listing.Icon]string{
	listing.IconWorkspace: "▣",
	listing.IconInfo:      "ⓘ",
}

// changedMsg tells the model the listing must be read again.
type changedMsg struct{}

// Model is the Bubble Tea model of the workspace view.
type Model struct {
	explorer    explorer.Explorer
	ideName     string
	items       []listing.Item
	cursor      int
	status      string
	err         error
	picker      *prompt.FolderPicker
	changes     chan struct{}
	unsubscribe func()
	quitting    bool
}

// NewModel creates the view, subscribes it to listing changes and reads the first listing.
// Call Close once the view is not used anymore.
func NewModel(e explorer.Explorer, ideName string) Model {
	m := Model{
		explorer: e,
		ideName:  ideName,
		changes:  make(chan struct{}, 1),
	}

	changes := m.changes
	m.unsubscribe = e.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	m.reload()
	return m
}

// Run shows the view until the user quits.
func Run(e explorer.Explorer, ideName string) error {
	m := NewModel(e, ideName)
	defer m.Close()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("failed to run workspace view: %w", err)
	}
	return nil
}

// Close unsubscribes the view from listing changes.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init starts waiting for listing changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		<-changes
		return changedMsg{}
	}
}

func (m *Model) reload() {
	items, err := m.explorer.List()
	if err != nil {
		m.err = err
		return
	}

	m.items = items
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(changedMsg); ok {
		m.reload()
		return m, m.waitForChange()
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.open()
	case "r":
		m.err = m.explorer.Refresh()
		m.status = ""
	case "s":
		picker := prompt.NewFolderPicker(m.explorer.GetBaseFolder())
		m.picker = &picker
		m.status = ""
		return m, picker.Init()
	}

	return m, nil
}

func (m *Model) open() {
	if m.cursor >= len(m.items) {
		return
	}

	item := m.items[m.cursor]
	if !item.Selectable {
		return
	}

	if err := m.explorer.Open(item.Entry, m.ideName); err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.status = "Opened " + item.Label
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	picker, ok := next.(prompt.FolderPicker)
	if !ok {
		m.picker = nil
		return m, nil
	}

	if !picker.Done() {
		m.picker = &picker
		return m, cmd
	}

	// The picker quits when done; the view keeps running.
	m.picker = nil

	path, selected := picker.Selected()
	if !selected {
		m.status = "Base folder unchanged"
		return m, nil
	}

	stored, err := m.explorer.SetBaseFolder(path)
	if err != nil {
		m.err = err
		m.status = ""
		return m, nil
	}
	m.err = nil
	m.status = "Base folder set: " + stored
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.picker != nil {
		return m.picker.View()
	}

	var s strings.Builder

	title := "Workspaces"
	if base := m.explorer.GetBaseFolder(); base != "" {
		title += " in " + base
	}
	s.WriteString(titleStyle.Render(title) + "\n\n")

	for i, item := range m.items {
		s.WriteString(m.renderItem(i, item) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + errStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		s.WriteString("\n" + m.status + "\n")
	}

	s.WriteString("\n" + helpStyle.Render("↑/↓: move  enter: open  r: refresh  s: set base folder  q: quit"))
	return s.String()
}

func (m Model) renderItem(index int, item listing.Item) string {
	line := icons[item.Icon] + " " + item.Label

	if item.IsPlaceholder() {
		return "  " + placeholderStyle.Render(line)
	}

	if index == m.cursor {
		line = "> " + selectedStyle.Render(line)
	} else {
		line = "  " + line
	}
	if item.Description != "" {
		line += " " + descriptionStyle.Render(item.Description)
	}
	return line
}
