package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType classifies a transient footer message
type FlashType int

// Flash message types
const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient status message shown in place of the keybindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg is sent periodically to expire flash messages
type FlashTickMsg struct{}

// FlashTick returns a command that ticks once a second to expire flashes
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// Footer represents the bottom footer bar with keybindings, transient status
// flashes, and a right-aligned system stats readout.
type Footer struct {
	width        int
	bindings     []KeyBinding
	flashMessage *FlashMessage
	stats        string
	modalVisible bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "ctrl+n", Desc: "new"},
			{Key: "ctrl+o", Desc: "open"},
			{Key: "ctrl+s", Desc: "save"},
			{Key: "ctrl+r", Desc: "recent"},
			{Key: "ctrl+t", Desc: "theme"},
			{Key: "ctrl+e", Desc: "settings"},
			{Key: "ctrl+q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetModalActive tells the footer a modal is open so it shows modal shortcuts
func (f *Footer) SetModalActive(active bool) {
	f.modalVisible = active
}

// SetStats sets the right-aligned system stats readout. Empty hides it.
func (f *Footer) SetStats(stats string) {
	f.stats = stats
}

// SetFlash shows a transient status message with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a transient status message with a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is currently set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears the flash message if it has expired.
// Returns true if a message was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// flashIcon returns the icon and style for a flash type
func flashIcon(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", StatusErrorStyle
	case FlashWarning:
		return "⚠", lipgloss.NewStyle().Foreground(ColorWarning)
	case FlashSuccess:
		return "✓", StatusSuccessStyle
	default:
		return "ℹ", lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// View renders the footer
func (f *Footer) View() string {
	var left string

	if f.flashMessage != nil {
		icon, style := flashIcon(f.flashMessage.Type)
		text := f.flashMessage.Text
		// Leave room for the icon, the stats readout, and padding
		maxText := f.width - runewidth.StringWidth(f.stats) - 8
		if maxText > 0 {
			text = runewidth.Truncate(text, maxText, "…")
		}
		left = style.Render(icon) + " " + FooterDescStyle.Render(text)
	} else {
		bindings := f.bindings
		if f.modalVisible {
			bindings = []KeyBinding{
				{Key: "enter", Desc: "confirm"},
				{Key: "esc", Desc: "cancel"},
			}
		}
		var parts []string
		for _, b := range bindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		left = strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	}

	if f.stats == "" {
		return FooterStyle.Width(f.width).Render(left)
	}

	right := FooterStatsStyle.Render(f.stats)

	// Right-align the stats readout after the keybindings / flash
	gap := f.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Not enough room; drop the stats rather than wrap the footer
		return FooterStyle.Width(f.width).Render(left)
	}

	return FooterStyle.Width(f.width).Render(left + strings.Repeat(" ", gap) + right)
}
