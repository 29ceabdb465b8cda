package modals

import (
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SaveAsState - State for the Save As modal (destination path input)
// =============================================================================

// SaveAsState collects a destination path. Esc cancels and is a no-op; the
// app layer reads GetPath on Enter.
type SaveAsState struct {
	Input textinput.Model
}

func (*SaveAsState) modalState() {}

func (s *SaveAsState) Title() string { return "Save As" }

func (s *SaveAsState) Help() string {
	return "Enter: save  Esc: cancel"
}

func (s *SaveAsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("File path:")

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, label, s.Input.View(), help)
}

func (s *SaveAsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// GetPath returns the entered destination path, cleaned. Empty means the
// user typed nothing.
func (s *SaveAsState) GetPath() string {
	path := strings.TrimSpace(s.Input.Value())
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// NewSaveAsState creates a new SaveAsState. currentPath pre-fills the input:
// the document's own path when it has one, otherwise a starting directory.
func NewSaveAsState(currentPath string) *SaveAsState {
	ti := textinput.New()
	ti.Placeholder = "/path/to/file.txt"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	if currentPath != "" {
		ti.SetValue(currentPath)
		ti.CursorEnd()
	}
	ti.Focus()

	return &SaveAsState{Input: ti}
}
