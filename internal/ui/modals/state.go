// Package modals provides modal dialog state types for the UI.
// Each modal type implements the ModalState interface with its own state
// struct, ensuring type-safe access to modal-specific fields. The modals
// stand in for native file dialogs: open, save as, unsaved changes, recent
// files, settings, and help.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// Modal list sizing
const (
	// FilePickerHeight is the number of entries visible in the open dialog
	FilePickerHeight = 12

	// RecentFilesMaxVisible is the max number of recent files shown at once
	RecentFilesMaxVisible = 10

	// HelpModalMaxVisible is the max number of help lines shown at once
	HelpModalMaxVisible = 14
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// PendingAction identifies the operation that triggered the unsaved-changes
// prompt and should run once the prompt resolves.
type PendingAction int

// Pending actions carried by the unsaved-changes prompt
const (
	ActionNone PendingAction = iota
	ActionNew
	ActionOpen
	ActionExit
)

// String returns a human-readable name for logging
func (a PendingAction) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionOpen:
		return "open"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}
