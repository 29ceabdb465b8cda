package ui

import "charm.land/lipgloss/v2"

// Color palette - initialized from the default theme, updated by regenerateStyles()
var (
	ColorPrimary     = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorSecondary   = lipgloss.Color(BuiltinThemes[DefaultTheme].Secondary)
	ColorMuted       = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorBorder      = lipgloss.Color(BuiltinThemes[DefaultTheme].Border)
	ColorBorderFocus = lipgloss.Color(BuiltinThemes[DefaultTheme].GetBorderFocus())
	ColorBg          = lipgloss.Color(BuiltinThemes[DefaultTheme].Bg)
	ColorText        = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted   = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorTextInverse = lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse)
	ColorWarning     = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorError       = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
	ColorSuccess     = lipgloss.Color(BuiltinThemes[DefaultTheme].Success)
	ColorInfo        = lipgloss.Color(BuiltinThemes[DefaultTheme].Info)
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
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
)

// Panel styles
var (
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
)

// List item styles (used by option-list modals)
var (
	ListItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)
)

// Modal styles
var (
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
)

// Status styles
var (
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)
)
