package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jot-sh/jot/internal/keys"
)

// =============================================================================
// RecentState - State for the Recent Files modal
// =============================================================================

// RecentState picks a file from the recent-files list kept in config.
type RecentState struct {
	Paths         []string
	SelectedIndex int
	ScrollOffset  int
}

func (*RecentState) modalState() {}

func (s *RecentState) Title() string { return "Recent Files" }

func (s *RecentState) Help() string {
	if len(s.Paths) == 0 {
		return "Press Esc to close"
	}
	return "↑/↓ select  Enter: open  Esc: cancel"
}

func (s *RecentState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	if len(s.Paths) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No recent files yet.")
		help := ModalHelpStyle.Render(s.Help())
		return lipgloss.JoinVertical(lipgloss.Left, title, empty, help)
	}

	// Window the list around the selection
	end := s.ScrollOffset + RecentFilesMaxVisible
	if end > len(s.Paths) {
		end = len(s.Paths)
	}

	items := make([]string, 0, end-s.ScrollOffset)
	for _, p := range s.Paths[s.ScrollOffset:end] {
		items = append(items, TruncatePath(p, ModalWidth-8))
	}

	list := RenderSelectableList(items, s.SelectedIndex-s.ScrollOffset)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, list, help)
}

func (s *RecentState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Paths)-1 {
				s.SelectedIndex++
				if s.SelectedIndex >= s.ScrollOffset+RecentFilesMaxVisible {
					s.ScrollOffset++
				}
			}
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
				if s.SelectedIndex < s.ScrollOffset {
					s.ScrollOffset--
				}
			}
		}
	}
	return s, nil
}

// SelectedPath returns the highlighted path, or empty if the list is empty
func (s *RecentState) SelectedPath() string {
	if len(s.Paths) == 0 {
		return ""
	}
	return s.Paths[s.SelectedIndex]
}

// NewRecentState creates a new RecentState from the recent-files list,
// most recent first.
func NewRecentState(paths []string) *RecentState {
	return &RecentState{Paths: paths}
}
