package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jot-sh/jot/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.renderLayout())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.renderLayout()
}

func (m *Model) renderLayout() string {
	m.footer.SetModalActive(m.modal.IsVisible())

	content := m.editor.View()

	// The modal replaces the editor area so the header clock and footer
	// hints stay on screen around it
	if m.modal.IsVisible() {
		ctx := ui.GetViewContext()
		content = m.modal.View(ctx.TerminalWidth, ctx.ContentHeight)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.editor.SetSize(ctx.EditorWidth, ctx.ContentHeight)
}
