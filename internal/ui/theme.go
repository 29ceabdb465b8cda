// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI; jot ships the
// Catppuccin Mocha (dark) and Latte (light) flavors.
package ui

import (
	"charm.land/lipgloss/v2"
	catppuccin "github.com/catppuccin/go"
)

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for info, key hints)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string // Unsaved-changes prompts, warnings
	Error   string // Error messages
	Success string // Save confirmations
	Info    string // Information

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeMocha ThemeName = "mocha"
	ThemeLatte ThemeName = "latte"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeMocha

func mochaTheme() Theme {
	f := catppuccin.Mocha
	return Theme{
		Name:        "Catppuccin Mocha",
		Primary:     f.Mauve().Hex,
		Secondary:   f.Sky().Hex,
		Bg:          f.Base().Hex,
		BgSelected:  f.Surface1().Hex,
		Text:        f.Text().Hex,
		TextMuted:   f.Overlay1().Hex,
		TextInverse: f.Base().Hex,
		Warning:     f.Peach().Hex,
		Error:       f.Red().Hex,
		Success:     f.Green().Hex,
		Info:        f.Sky().Hex,
		Border:      f.Surface0().Hex,
	}
}

func latteTheme() Theme {
	f := catppuccin.Latte
	return Theme{
		Name:        "Catppuccin Latte",
		Primary:     f.Mauve().Hex,
		Secondary:   f.Sapphire().Hex,
		Bg:          f.Base().Hex,
		BgSelected:  f.Surface1().Hex,
		Text:        f.Text().Hex,
		TextMuted:   f.Overlay1().Hex,
		TextInverse: f.Base().Hex,
		Warning:     f.Peach().Hex,
		Error:       f.Red().Hex,
		Success:     f.Green().Hex,
		Info:        f.Sapphire().Hex,
		Border:      f.Surface0().Hex,
	}
}

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeMocha: mochaTheme(),
	ThemeLatte: latteTheme(),
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeMocha, ThemeLatte}
}

// GetTheme returns a theme by name, defaulting to Mocha if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// ToggleTheme switches between the dark and light themes and returns
// the name of the newly active theme.
func ToggleTheme() ThemeName {
	next := ThemeLatte
	if CurrentThemeName() == ThemeLatte {
		next = ThemeMocha
	}
	SetTheme(next)
	return next
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorInfo = lipgloss.Color(t.Info)

	// Update header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStatsStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Update panel styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	// Update list item styles
	ListItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	// Update modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Update status styles
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
}
