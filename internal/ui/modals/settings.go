package modals

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal (huh form)
// =============================================================================

const (
	optionNotifications = "notifications"
	optionWeather       = "weather"
	optionStats         = "stats"
)

// SettingsState edits the persisted preferences: theme, desktop
// notifications, and the header/footer readouts.
type SettingsState struct {
	// Bound form values
	selectedTheme string
	OriginalTheme string // To detect if the theme changed

	NotificationsEnabled bool
	ShowWeather          bool
	ShowStats            bool

	// MultiSelect binding
	generalOptions []string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect binding.
func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	s.ShowWeather = slices.Contains(s.generalOptions, optionWeather)
	s.ShowStats = slices.Contains(s.generalOptions, optionStats)
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// NewSettingsState creates a new SettingsState with the current settings values.
// themes and themeDisplayNames are parallel slices of theme keys and labels.
func NewSettingsState(themes []string, themeDisplayNames []string, currentTheme string,
	notificationsEnabled, showWeather, showStats bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		NotificationsEnabled: notificationsEnabled,
		ShowWeather:          showWeather,
		ShowStats:            showStats,
	}

	// Build theme options
	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	// Build general options MultiSelect
	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
		huh.NewOption("Show weather in header", optionWeather).
			Selected(showWeather),
		huh.NewOption("Show system stats in footer", optionStats).
			Selected(showStats),
	}
	// Initialize the bound slice to match
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	if showWeather {
		s.generalOptions = append(s.generalOptions, optionWeather)
	}
	if showStats {
		s.generalOptions = append(s.generalOptions, optionStats)
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	return s
}
