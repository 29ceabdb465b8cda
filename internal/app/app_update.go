package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jot-sh/jot/internal/keys"
	"github.com/jot-sh/jot/internal/logger"
	"github.com/jot-sh/jot/internal/sysmon"
	"github.com/jot-sh/jot/internal/ui"
)

// Update handles messages. Document file I/O runs synchronously here;
// blocking the loop for the duration is fine at the file sizes jot targets.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ClockTickMsg:
		m.header.SetTime(time.Time(msg))
		return m, clockTick()

	case StatsTickMsg:
		if m.config.GetShowStats() {
			return m, tea.Batch(collectStats(), statsTick())
		}
		m.footer.SetStats("")
		return m, statsTick()

	case StatsMsg:
		if m.config.GetShowStats() {
			m.footer.SetStats(sysmon.Stats(msg).String())
		}
		return m, nil

	case WeatherTickMsg:
		if m.config.GetShowWeather() {
			return m, tea.Batch(m.fetchWeather(), weatherTick())
		}
		return m, weatherTick()

	case WeatherFetchedMsg:
		if msg.Err != nil {
			// Degrade to no readout rather than surfacing an error
			logger.Warn("Weather fetch failed: %v", msg.Err)
			m.header.SetWeather("")
			return m, nil
		}
		if m.config.GetShowWeather() {
			m.header.SetWeather(msg.Info.String())
		}
		return m, nil

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case tea.KeyPressMsg:
		// Handle modal first if visible
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleGlobalKey(msg)
	}

	// Non-key messages belong to whichever surface is active: the modal
	// (filepicker directory reads, form state) or the editor (cursor blink)
	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	cmd := m.editor.Update(msg)
	return m, cmd
}

// handleGlobalKey handles key presses when no modal is open
func (m *Model) handleGlobalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlC, keys.CtrlQ:
		return m.requestExit()

	case keys.CtrlN:
		return m.requestNew()

	case keys.CtrlO:
		return m.requestOpen()

	case keys.CtrlS:
		return m.saveDocument()

	case keys.CtrlShiftS:
		return m.showSaveAsModal()

	case keys.CtrlR:
		return m.showRecentModal()

	case keys.CtrlT:
		return m.toggleTheme()

	case keys.CtrlE:
		return m.showSettingsModal()

	case keys.CtrlH:
		return m.showHelpModal()

	case keys.CtrlY:
		return m.copyBufferToClipboard()
	}

	// Everything else goes to the textarea; fold the result back into the
	// document so edits flip the dirty flag
	cmd := m.editor.Update(msg)
	m.syncDocument()
	return m, cmd
}
