package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jot-sh/jot/internal/keys"
	"github.com/jot-sh/jot/internal/logger"
	"github.com/jot-sh/jot/internal/ui"
	"github.com/jot-sh/jot/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on
// modal state type. Enter and Escape resolve the dialog at this layer; other
// keys are delegated to the state's own Update.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.OpenState:
		return m.handleOpenModal(key, msg, s)
	case *modals.SaveAsState:
		return m.handleSaveAsModal(key, msg, s)
	case *modals.UnsavedState:
		return m.handleUnsavedModal(key, msg, s)
	case *modals.RecentState:
		return m.handleRecentModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// Modal constructors

func (m *Model) showOpenModal() (tea.Model, tea.Cmd) {
	state := modals.NewOpenState(m.doc.Dir())
	m.modal.Show(state)
	return m, state.Init()
}

func (m *Model) showSaveAsModal() (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewSaveAsState(m.doc.Path()))
	return m, nil
}

func (m *Model) showUnsavedModal(action modals.PendingAction) (tea.Model, tea.Cmd) {
	m.pendingAction = action
	m.modal.Show(modals.NewUnsavedState(action, m.doc.DisplayName()))
	return m, nil
}

func (m *Model) showRecentModal() (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewRecentState(m.config.GetRecentFiles()))
	return m, nil
}

func (m *Model) showSettingsModal() (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themeKeys := make([]string, len(names))
	themeLabels := make([]string, len(names))
	for i, name := range names {
		themeKeys[i] = string(name)
		themeLabels[i] = ui.GetTheme(name).Name
	}
	m.modal.Show(modals.NewSettingsState(
		themeKeys, themeLabels, string(ui.CurrentThemeName()),
		m.config.GetNotificationsEnabled(),
		m.config.GetShowWeather(),
		m.config.GetShowStats(),
	))
	return m, nil
}

func (m *Model) showHelpModal() (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpState())
	return m, nil
}

// Per-modal key handlers

// handleOpenModal drives the file picker. Cancel is a no-op; a picked file
// replaces the document.
func (m *Model) handleOpenModal(key string, msg tea.KeyPressMsg, state *modals.OpenState) (tea.Model, tea.Cmd) {
	if key == keys.Escape {
		m.modal.Hide()
		m.pendingAction = modals.ActionNone
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal

	if state.HasSelection() {
		path := state.SelectedPath
		m.modal.Hide()
		model, openCmd := m.openFile(path)
		return model, tea.Batch(cmd, openCmd)
	}

	return m, cmd
}

// handleSaveAsModal collects the destination path. Cancel is a no-op and
// drops any pending action.
func (m *Model) handleSaveAsModal(key string, msg tea.KeyPressMsg, state *modals.SaveAsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		m.pendingAction = modals.ActionNone
		m.pendingOpenPath = ""
		return m, nil

	case keys.Enter:
		path := state.GetPath()
		if path == "" {
			m.modal.SetError("Enter a file path")
			return m, nil
		}
		m.modal.Hide()
		return m.saveDocumentAs(path)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleUnsavedModal resolves the Save / Don't Save / Cancel prompt.
// Save-then-continue only proceeds once the save actually cleared the
// dirty flag; Don't Save abandons the changes and continues.
func (m *Model) handleUnsavedModal(key string, msg tea.KeyPressMsg, state *modals.UnsavedState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		m.pendingAction = modals.ActionNone
		m.pendingOpenPath = ""
		return m, nil

	case keys.Enter:
		switch state.Choice() {
		case modals.ChoiceSave:
			m.modal.Hide()
			if !m.doc.HasPath() {
				// Chain into Save As; the pending action survives and
				// resumes after a successful save
				return m.showSaveAsModal()
			}
			if err := m.doc.Save(); err != nil {
				m.pendingAction = modals.ActionNone
				m.pendingOpenPath = ""
				return m, m.ShowFlashError("Error saving " + m.doc.Path())
			}
			m.syncEditorTitle()
			m.config.AddRecentFile(m.doc.Path())
			if err := m.config.Save(); err != nil {
				logger.Error("Config save failed: %v", err)
			}
			flash := m.ShowFlashSuccess("Saved: " + m.doc.Path())
			model, cmd := m.executePendingAction()
			return model, tea.Batch(flash, cmd)

		case modals.ChoiceDiscard:
			m.modal.Hide()
			return m.executePendingAction()

		default: // ChoiceCancel
			m.modal.Hide()
			m.pendingAction = modals.ActionNone
			m.pendingOpenPath = ""
			return m, nil
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleRecentModal opens the selected recent file
func (m *Model) handleRecentModal(key string, msg tea.KeyPressMsg, state *modals.RecentState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		path := state.SelectedPath()
		m.modal.Hide()
		if path == "" {
			return m, nil
		}
		if m.doc.Dirty() {
			// Route through the unsaved-changes prompt with the chosen
			// file carried as the pending open target
			m.pendingOpenPath = path
			return m.showUnsavedModal(modals.ActionOpen)
		}
		return m.openFile(path)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal applies or discards the settings form
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		m.modal.Hide()

		if theme := state.GetSelectedTheme(); theme != state.OriginalTheme {
			ui.SetThemeByName(theme)
		}
		m.config.SetTheme(state.GetSelectedTheme())
		m.config.SetNotificationsEnabled(state.NotificationsEnabled)
		m.config.SetShowWeather(state.ShowWeather)
		m.config.SetShowStats(state.ShowStats)

		var cmds []tea.Cmd
		if state.ShowWeather {
			cmds = append(cmds, m.fetchWeather())
		} else {
			m.header.SetWeather("")
		}
		if !state.ShowStats {
			m.footer.SetStats("")
		}
		if err := m.config.Save(); err != nil {
			logger.Error("Config save failed: %v", err)
			cmds = append(cmds, m.ShowFlashError("Error saving settings"))
		} else {
			cmds = append(cmds, m.ShowFlashSuccess("Settings saved"))
		}
		return m, tea.Batch(cmds...)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal dismisses or scrolls the help reference
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, keys.Enter:
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
