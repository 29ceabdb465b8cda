// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/jot-sh/jot/internal/logger"
)

// notify is the underlying notification function, swappable in tests.
var notify = beeep.Notify

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// SaveFailed sends a notification that writing the document out failed.
func SaveFailed(name string) error {
	return Send("Jot", "Could not save "+name)
}

// OpenFailed sends a notification that reading a file failed.
func OpenFailed(name string) error {
	return Send("Jot", "Could not open "+name)
}
