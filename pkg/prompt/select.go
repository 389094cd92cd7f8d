package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for workspace selection.
type selectModel struct {
	choices         []Choice
	filteredChoices []Choice
	cursor          int
	filter          string
	selected        *Choice
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(choices []Choice) selectModel {
	return selectModel{
		choices:         choices,
		filteredChoices: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()

	switch key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
		return m, nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		if m.filter == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.filter = ""
		m.updateFilteredChoices()
	default:
		if len(keyMsg.Runes) == 1 {
			m.filter += string(keyMsg.Runes)
			m.updateFilteredChoices()
		}
	}

	return m, nil
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []Choice{}
		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Name), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose a workspace:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	if len(m.filteredChoices) == 0 {
		s.WriteString("  (no match)\n")
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, formatChoice(choice)))
	}

	s.WriteString("\nPress Enter to open, Esc or Ctrl+C to quit")

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice Choice) string {
	if choice.Description == "" {
		return choice.Name
	}
	return fmt.Sprintf("%s (%s)", choice.Name, choice.Description)
}
