package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jot-sh/jot/internal/keys"
)

// =============================================================================
// HelpState - State for the Help modal with keyboard shortcuts
// =============================================================================

// HelpShortcut is one key binding line in the help modal
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpSection groups shortcuts under a heading
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// HelpState renders the key binding reference as a scrollable list of
// section headers and shortcut lines.
type HelpState struct {
	Sections     []HelpSection
	ScrollOffset int

	lines      []string
	totalLines int
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.totalLines > HelpModalMaxVisible {
		return "↑/↓ scroll  Enter/Esc: close"
	}
	return "Press Enter or Esc to close"
}

func (s *HelpState) buildLines() {
	if s.lines != nil {
		return
	}
	for i, section := range s.Sections {
		if i > 0 {
			s.lines = append(s.lines, "")
		}
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Render(section.Title)
		s.lines = append(s.lines, header)
		for _, sc := range section.Shortcuts {
			key := lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(14).
				Render(sc.Key)
			desc := lipgloss.NewStyle().
				Foreground(ColorText).
				Render(sc.Desc)
			s.lines = append(s.lines, "  "+key+desc)
		}
	}
	s.totalLines = len(s.lines)
}

func (s *HelpState) Render() string {
	s.buildLines()

	title := ModalTitleStyle.Render(s.Title())

	end := s.ScrollOffset + HelpModalMaxVisible
	if end > s.totalLines {
		end = s.totalLines
	}
	content := lipgloss.JoinVertical(lipgloss.Left, s.lines[s.ScrollOffset:end]...)

	if s.totalLines > HelpModalMaxVisible {
		more := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("(scroll for more)")
		content += "\n" + more
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	s.buildLines()
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.ScrollOffset > 0 {
				s.ScrollOffset--
			}
		case keys.Down, "j":
			maxOffset := max(0, s.totalLines-HelpModalMaxVisible)
			if s.ScrollOffset < maxOffset {
				s.ScrollOffset++
			}
		}
	}
	return s, nil
}

// NewHelpState creates the help modal with jot's key bindings
func NewHelpState() *HelpState {
	return &HelpState{
		Sections: []HelpSection{
			{
				Title: "File",
				Shortcuts: []HelpShortcut{
					{Key: "ctrl+n", Desc: "new file"},
					{Key: "ctrl+o", Desc: "open file"},
					{Key: "ctrl+s", Desc: "save"},
					{Key: "ctrl+shift+s", Desc: "save as"},
					{Key: "ctrl+r", Desc: "recent files"},
				},
			},
			{
				Title: "Edit",
				Shortcuts: []HelpShortcut{
					{Key: "ctrl+y", Desc: "copy buffer to clipboard"},
				},
			},
			{
				Title: "Application",
				Shortcuts: []HelpShortcut{
					{Key: "ctrl+t", Desc: "toggle dark/light theme"},
					{Key: "ctrl+e", Desc: "settings"},
					{Key: "ctrl+h", Desc: "this help"},
					{Key: "ctrl+q", Desc: "quit"},
				},
			},
		},
	}
}
