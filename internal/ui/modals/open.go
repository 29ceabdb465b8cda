package modals

import (
	"os"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// OpenState - State for the Open File modal (file picker)
// =============================================================================

// OpenState browses the filesystem for a file to open. Esc cancels and is a
// no-op; picking a file hands its path to the app layer.
type OpenState struct {
	Picker filepicker.Model

	// SelectedPath is set once the picker reports a chosen file
	SelectedPath string
}

func (*OpenState) modalState() {}

func (s *OpenState) Title() string { return "Open File" }

func (s *OpenState) Help() string {
	return "↑/↓ navigate  Enter: open  Esc: cancel"
}

func (s *OpenState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	location := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(TruncatePath(s.Picker.CurrentDirectory, ModalInputWidth))

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, location, s.Picker.View(), help)
}

func (s *OpenState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Picker, cmd = s.Picker.Update(msg)

	// The picker reports selection through its message stream rather than
	// a direct return value
	if didSelect, path := s.Picker.DidSelectFile(msg); didSelect {
		s.SelectedPath = path
	}

	return s, cmd
}

// HasSelection reports whether a file has been picked
func (s *OpenState) HasSelection() bool {
	return s.SelectedPath != ""
}

// Init returns the command that loads the initial directory listing.
// The app layer must run this when showing the modal.
func (s *OpenState) Init() tea.Cmd {
	return s.Picker.Init()
}

// NewOpenState creates a new OpenState rooted at startDir. An empty or
// unreadable startDir falls back to the user's home directory.
func NewOpenState(startDir string) *OpenState {
	if startDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startDir = home
		} else {
			startDir = "."
		}
	}
	if info, err := os.Stat(startDir); err != nil || !info.IsDir() {
		startDir = "."
	}

	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(FilePickerHeight)

	return &OpenState{Picker: fp}
}
