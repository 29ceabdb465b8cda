package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func withMock(t *testing.T, m *mockNotification) {
	t.Helper()
	orig := notify
	notify = m.notify
	t.Cleanup(func() { notify = orig })
}

func TestSend(t *testing.T) {
	m := &mockNotification{}
	withMock(t, m)

	if err := Send("Jot", "hello"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	if len(m.calls) != 1 {
		t.Fatalf("notify called %d times, want 1", len(m.calls))
	}
	if m.calls[0].title != "Jot" || m.calls[0].message != "hello" {
		t.Errorf("notify called with (%q, %q)", m.calls[0].title, m.calls[0].message)
	}
}

func TestSend_Error(t *testing.T) {
	m := &mockNotification{err: errors.New("dbus unavailable")}
	withMock(t, m)

	if err := Send("Jot", "hello"); err == nil {
		t.Error("Send() should propagate the notify error")
	}
}

func TestSaveFailed(t *testing.T) {
	m := &mockNotification{}
	withMock(t, m)

	if err := SaveFailed("notes.txt"); err != nil {
		t.Fatalf("SaveFailed() error: %v", err)
	}
	if m.calls[0].message != "Could not save notes.txt" {
		t.Errorf("message = %q", m.calls[0].message)
	}
}

func TestOpenFailed(t *testing.T) {
	m := &mockNotification{}
	withMock(t, m)

	if err := OpenFailed("notes.txt"); err != nil {
		t.Fatalf("OpenFailed() error: %v", err)
	}
	if m.calls[0].message != "Could not open notes.txt" {
		t.Errorf("message = %q", m.calls[0].message)
	}
}
