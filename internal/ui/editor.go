package ui

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Editor is the central panel: a multiline textarea showing the document text,
// framed by a bordered panel whose title carries the document name and a
// dirty marker.
type Editor struct {
	input   textarea.Model
	width   int
	height  int
	focused bool
	title   string
	dirty   bool
}

// NewEditor creates the editor panel
func NewEditor() *Editor {
	ti := textarea.New()
	ti.Placeholder = "Start typing..."
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	return &Editor{input: ti}
}

// SetSize sets the editor panel dimensions
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width)
	innerHeight := ctx.InnerHeight(height) - TitleHeight
	if innerHeight < 1 {
		innerHeight = 1
	}

	e.input.SetWidth(innerWidth)
	e.input.SetHeight(innerHeight)
}

// SetFocused sets the focus state
func (e *Editor) SetFocused(focused bool) {
	e.focused = focused
	if focused {
		e.input.Focus()
	} else {
		e.input.Blur()
	}
}

// IsFocused returns the focus state
func (e *Editor) IsFocused() bool {
	return e.focused
}

// SetTitle sets the panel title (the document display name) and dirty marker
func (e *Editor) SetTitle(name string, dirty bool) {
	e.title = name
	e.dirty = dirty
}

// SetValue replaces the textarea content and moves the cursor to the start
func (e *Editor) SetValue(text string) {
	e.input.SetValue(text)
	e.input.CursorStart()
}

// Value returns the current textarea content
func (e *Editor) Value() string {
	return e.input.Value()
}

// Update forwards messages to the textarea
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// View renders the editor panel
func (e *Editor) View() string {
	panelStyle := PanelStyle
	if e.focused {
		panelStyle = PanelFocusedStyle
	}

	title := e.title
	if e.dirty {
		title += " ●"
	}
	titleBar := PanelTitleStyle.Render(title)

	content := lipgloss.JoinVertical(lipgloss.Left, titleBar, e.input.View())

	return panelStyle.Width(e.width).Height(e.height).Render(content)
}
