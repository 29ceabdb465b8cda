package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jot-sh/jot/internal/keys"
)

// =============================================================================
// UnsavedState - State for the Unsaved Changes prompt
// =============================================================================

// UnsavedChoice is one of the three ways out of the unsaved-changes prompt
type UnsavedChoice int

// Choices offered by the prompt
const (
	ChoiceSave UnsavedChoice = iota
	ChoiceDiscard
	ChoiceCancel
)

// UnsavedState asks what to do with unsaved changes before a destructive
// operation. It carries the operation as a PendingAction so the app layer
// can resume it after a save.
type UnsavedState struct {
	Action        PendingAction
	DocumentName  string
	Options       []string
	SelectedIndex int
}

func (*UnsavedState) modalState() {}

func (s *UnsavedState) Title() string { return "Unsaved Changes" }

func (s *UnsavedState) Help() string {
	return "↑/↓ select  Enter: confirm  Esc: cancel"
}

func (s *UnsavedState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var verb string
	switch s.Action {
	case ActionNew:
		verb = "creating a new file"
	case ActionOpen:
		verb = "opening another file"
	case ActionExit:
		verb = "exiting"
	default:
		verb = "continuing"
	}

	warning := lipgloss.NewStyle().
		Foreground(ColorWarning).
		Width(ModalWidth - 6).
		Render("\"" + s.DocumentName + "\" has unsaved changes. Save before " + verb + "?")

	options := RenderSelectableList(s.Options, s.SelectedIndex)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, warning, "", options, help)
}

func (s *UnsavedState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		}
	}
	return s, nil
}

// Choice returns the currently selected choice
func (s *UnsavedState) Choice() UnsavedChoice {
	return UnsavedChoice(s.SelectedIndex)
}

// NewUnsavedState creates a new UnsavedState for the given pending action.
// The selection starts on Save.
func NewUnsavedState(action PendingAction, documentName string) *UnsavedState {
	return &UnsavedState{
		Action:       action,
		DocumentName: documentName,
		Options:      []string{"Save", "Don't Save", "Cancel"},
	}
}
