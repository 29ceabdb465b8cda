package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// ClockFormat is the layout of the header clock.
const ClockFormat = "Monday, January 02, 2006 03:04:05 PM"

// Header represents the top header bar with the app title, the current
// weather readout, and a live clock.
type Header struct {
	width   int
	clock   string
	weather string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTime sets the clock from the given wall time
func (h *Header) SetTime(t time.Time) {
	h.clock = t.Format(ClockFormat)
}

// SetWeather sets the weather readout text. An empty string hides it.
func (h *Header) SetWeather(text string) {
	h.weather = text
}

// View renders the header
func (h *Header) View() string {
	// Build the content string (without styling)
	titleText := " jot"
	var rightText string
	if h.clock != "" {
		rightText = h.clock + " "
	}
	if h.weather != "" {
		rightText = h.weather + "  " + rightText
	}

	// Pad by display width; weather icons are often double-width
	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#CBA6F7") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The weather portion of the text is muted to keep the clock prominent.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	// Get colors from current theme
	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// Find where the weather portion starts (if present)
	weatherStart := -1
	if h.weather != "" {
		weatherStart = strings.Index(content, h.weather)
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Calculate interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		// Interpolate colors
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		// Determine if this character is in the weather portion
		inWeather := weatherStart >= 0 && i >= weatherStart && i < weatherStart+len([]rune(h.weather))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 4) // Bold for the "jot" title

		if inWeather {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
