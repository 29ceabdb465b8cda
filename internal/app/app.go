package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jot-sh/jot/internal/config"
	"github.com/jot-sh/jot/internal/document"
	"github.com/jot-sh/jot/internal/logger"
	"github.com/jot-sh/jot/internal/sysmon"
	"github.com/jot-sh/jot/internal/ui"
	"github.com/jot-sh/jot/internal/ui/modals"
	"github.com/jot-sh/jot/internal/weather"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	editor  *ui.Editor
	modal   *ui.Modal

	doc           *document.Document
	weatherClient *weather.Client

	width  int
	height int

	// The operation waiting behind the unsaved-changes prompt
	pendingAction modals.PendingAction

	// A concrete file chosen before the prompt (recent-files path); empty
	// means a resumed Open shows the picker instead
	pendingOpenPath string
}

// ClockTickMsg is sent every second to refresh the header clock
type ClockTickMsg time.Time

// StatsTickMsg is sent every second to trigger a system stats collection
type StatsTickMsg time.Time

// StatsMsg carries a completed system stats collection
type StatsMsg sysmon.Stats

// WeatherTickMsg is sent periodically to trigger a weather refresh
type WeatherTickMsg struct{}

// WeatherFetchedMsg carries the result of a weather fetch
type WeatherFetchedMsg struct {
	Info *weather.Info
	Err  error
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	} else {
		ui.SetTheme(ui.DefaultTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		editor:        ui.NewEditor(),
		modal:         ui.NewModal(),
		doc:           document.New(),
		weatherClient: weather.NewClient(),
	}

	m.header.SetTime(time.Now())
	m.editor.SetFocused(true)
	m.syncEditorTitle()

	return m
}

// Document exposes the current document (for tests and the CLI layer)
func (m *Model) Document() *document.Document {
	return m.doc
}

// OpenStartupFile loads the file given on the command line. A read failure
// surfaces a flash and leaves the empty document untouched.
func (m *Model) OpenStartupFile(path string) {
	if err := m.doc.Load(path); err != nil {
		logger.Warn("Startup file open failed: %v", err)
		m.footer.SetFlash("Error opening "+path, ui.FlashError)
		return
	}
	m.editor.SetValue(m.doc.Text())
	m.config.AddRecentFile(m.doc.Path())
	if err := m.config.Save(); err != nil {
		logger.Error("Config save failed: %v", err)
	}
	m.syncEditorTitle()
}

// syncEditorTitle refreshes the panel title from the document state
func (m *Model) syncEditorTitle() {
	m.editor.SetTitle(m.doc.DisplayName(), m.doc.Dirty())
}

// syncDocument folds the textarea content back into the document.
// Identical content does not flip the dirty flag.
func (m *Model) syncDocument() {
	m.doc.SetText(m.editor.Value())
	m.syncEditorTitle()
}

// Init initializes the model and kicks off the recurring background work
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTick(), statsTick()}
	if m.config.GetShowWeather() {
		cmds = append(cmds, m.fetchWeather(), weatherTick())
	}
	// A startup-file failure may have set a flash before the program
	// started; it needs a tick to expire like every other flash
	if m.footer.HasFlash() {
		cmds = append(cmds, ui.FlashTick())
	}
	return tea.Batch(cmds...)
}

// clockTick schedules the next header clock update
func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// statsTick schedules the next system stats collection
func statsTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return StatsTickMsg(t)
	})
}

// weatherTick schedules the next weather refresh
func weatherTick() tea.Cmd {
	return tea.Tick(weather.RefreshInterval, func(time.Time) tea.Msg {
		return WeatherTickMsg{}
	})
}

// collectStats samples CPU/RAM/temperature off the event loop
func collectStats() tea.Cmd {
	return func() tea.Msg {
		return StatsMsg(sysmon.Collect(context.Background()))
	}
}

// fetchWeather geolocates and fetches the current conditions off the event loop
func (m *Model) fetchWeather() tea.Cmd {
	client := m.weatherClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		info, err := client.Fetch(ctx)
		return WeatherFetchedMsg{Info: info, Err: err}
	}
}
