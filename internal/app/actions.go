package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jot-sh/jot/internal/clipboard"
	"github.com/jot-sh/jot/internal/logger"
	"github.com/jot-sh/jot/internal/notification"
	"github.com/jot-sh/jot/internal/ui"
	"github.com/jot-sh/jot/internal/ui/modals"
)

// requestNew starts the New File operation, prompting first when there are
// unsaved changes.
func (m *Model) requestNew() (tea.Model, tea.Cmd) {
	if m.doc.Dirty() {
		return m.showUnsavedModal(modals.ActionNew)
	}
	return m.resetDocument()
}

// requestOpen starts the Open File operation, prompting first when there are
// unsaved changes.
func (m *Model) requestOpen() (tea.Model, tea.Cmd) {
	if m.doc.Dirty() {
		return m.showUnsavedModal(modals.ActionOpen)
	}
	return m.showOpenModal()
}

// requestExit starts the quit operation, prompting first when there are
// unsaved changes.
func (m *Model) requestExit() (tea.Model, tea.Cmd) {
	if m.doc.Dirty() {
		return m.showUnsavedModal(modals.ActionExit)
	}
	return m, tea.Quit
}

// resetDocument replaces the document with an empty, clean one.
// Confirmation has already happened by the time this runs.
func (m *Model) resetDocument() (tea.Model, tea.Cmd) {
	m.doc.Reset()
	m.editor.SetValue("")
	m.syncEditorTitle()
	logger.Info("New document created")
	return m, m.ShowFlashInfo("New file created")
}

// openFile reads path into the document. On failure the document is left
// unchanged and the error is surfaced as a flash (and a desktop
// notification when enabled).
func (m *Model) openFile(path string) (tea.Model, tea.Cmd) {
	if err := m.doc.Load(path); err != nil {
		logger.Error("Open failed: %v", err)
		if m.config.GetNotificationsEnabled() {
			notification.OpenFailed(path)
		}
		return m, m.ShowFlashError("Error opening " + path)
	}

	m.editor.SetValue(m.doc.Text())
	m.syncEditorTitle()
	m.config.AddRecentFile(m.doc.Path())
	if err := m.config.Save(); err != nil {
		logger.Error("Config save failed: %v", err)
	}
	logger.Info("Opened %s", m.doc.Path())
	return m, m.ShowFlashSuccess("Opened: " + m.doc.Path())
}

// saveDocument saves to the document's own path, or falls through to
// Save As when it has none.
func (m *Model) saveDocument() (tea.Model, tea.Cmd) {
	if !m.doc.HasPath() {
		return m.showSaveAsModal()
	}

	if err := m.doc.Save(); err != nil {
		logger.Error("Save failed: %v", err)
		if m.config.GetNotificationsEnabled() {
			notification.SaveFailed(m.doc.DisplayName())
		}
		return m, m.ShowFlashError("Error saving " + m.doc.Path())
	}

	m.syncEditorTitle()
	m.config.AddRecentFile(m.doc.Path())
	if err := m.config.Save(); err != nil {
		logger.Error("Config save failed: %v", err)
	}
	logger.Info("Saved %s", m.doc.Path())
	return m, m.ShowFlashSuccess("Saved: " + m.doc.Path())
}

// saveDocumentAs writes the document to path. On success any pending action
// resumes; on failure the document (and the pending action) stay put.
func (m *Model) saveDocumentAs(path string) (tea.Model, tea.Cmd) {
	if err := m.doc.SaveAs(path); err != nil {
		logger.Error("Save As failed: %v", err)
		if m.config.GetNotificationsEnabled() {
			notification.SaveFailed(path)
		}
		m.pendingAction = modals.ActionNone
		m.pendingOpenPath = ""
		return m, m.ShowFlashError("Error saving " + path)
	}

	m.syncEditorTitle()
	m.config.AddRecentFile(m.doc.Path())
	if err := m.config.Save(); err != nil {
		logger.Error("Config save failed: %v", err)
	}
	logger.Info("Saved %s", m.doc.Path())

	flash := m.ShowFlashSuccess("Saved: " + m.doc.Path())
	if m.pendingAction != modals.ActionNone {
		model, cmd := m.executePendingAction()
		return model, tea.Batch(flash, cmd)
	}
	return m, flash
}

// executePendingAction resumes the operation that the unsaved-changes
// prompt interrupted. The save has already succeeded (or the user chose
// to discard) by the time this runs.
func (m *Model) executePendingAction() (tea.Model, tea.Cmd) {
	action := m.pendingAction
	m.pendingAction = modals.ActionNone
	logger.Debug("Resuming pending action: %s", action)

	switch action {
	case modals.ActionNew:
		return m.resetDocument()
	case modals.ActionOpen:
		if path := m.pendingOpenPath; path != "" {
			m.pendingOpenPath = ""
			return m.openFile(path)
		}
		return m.showOpenModal()
	case modals.ActionExit:
		return m, tea.Quit
	}
	return m, nil
}

// copyBufferToClipboard copies the whole document text to the system clipboard
func (m *Model) copyBufferToClipboard() (tea.Model, tea.Cmd) {
	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
		return m, m.ShowFlashError("Clipboard unavailable")
	}
	clipboard.WriteText(m.doc.Text())
	return m, m.ShowFlashInfo("Copied buffer to clipboard")
}

// toggleTheme flips between the dark and light themes and persists the choice
func (m *Model) toggleTheme() (tea.Model, tea.Cmd) {
	name := ui.ToggleTheme()
	m.config.SetTheme(string(name))
	if err := m.config.Save(); err != nil {
		logger.Error("Config save failed: %v", err)
	}
	return m, m.ShowFlashInfo("Theme: " + ui.CurrentTheme().Name)
}
