package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

// =============================================================================
// UnsavedState Tests
// =============================================================================

func TestNewUnsavedState(t *testing.T) {
	state := NewUnsavedState(ActionExit, "Untitled")

	if state.Action != ActionExit {
		t.Errorf("expected action %v, got %v", ActionExit, state.Action)
	}

	if len(state.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(state.Options))
	}

	if state.Options[0] != "Save" || state.Options[1] != "Don't Save" || state.Options[2] != "Cancel" {
		t.Errorf("unexpected options: %v", state.Options)
	}

	if state.Choice() != ChoiceSave {
		t.Errorf("expected initial choice ChoiceSave, got %v", state.Choice())
	}
}

func TestUnsavedState_Navigation(t *testing.T) {
	state := NewUnsavedState(ActionNew, "notes.txt")

	// Down moves through the options
	state.Update(keyPress("down"))
	if state.Choice() != ChoiceDiscard {
		t.Errorf("expected ChoiceDiscard after down, got %v", state.Choice())
	}

	state.Update(keyPress("j"))
	if state.Choice() != ChoiceCancel {
		t.Errorf("expected ChoiceCancel after j, got %v", state.Choice())
	}

	// Down at the bottom stays put
	state.Update(keyPress("down"))
	if state.Choice() != ChoiceCancel {
		t.Errorf("expected ChoiceCancel at bottom, got %v", state.Choice())
	}

	// Up moves back
	state.Update(keyPress("k"))
	if state.Choice() != ChoiceDiscard {
		t.Errorf("expected ChoiceDiscard after k, got %v", state.Choice())
	}

	state.Update(keyPress("up"))
	state.Update(keyPress("up"))
	if state.Choice() != ChoiceSave {
		t.Errorf("expected ChoiceSave at top, got %v", state.Choice())
	}
}

func TestUnsavedState_RenderMentionsAction(t *testing.T) {
	tests := []struct {
		action PendingAction
		want   string
	}{
		{ActionNew, "new file"},
		{ActionOpen, "opening another file"},
		{ActionExit, "exiting"},
	}

	for _, tt := range tests {
		state := NewUnsavedState(tt.action, "draft.txt")
		view := state.Render()
		if !strings.Contains(view, tt.want) {
			t.Errorf("render for %v should mention %q", tt.action, tt.want)
		}
		if !strings.Contains(view, "draft.txt") {
			t.Errorf("render for %v should mention the document name", tt.action)
		}
	}
}

func TestPendingAction_String(t *testing.T) {
	tests := []struct {
		action PendingAction
		want   string
	}{
		{ActionNone, "none"},
		{ActionNew, "new"},
		{ActionOpen, "open"},
		{ActionExit, "exit"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("PendingAction(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

// =============================================================================
// SaveAsState Tests
// =============================================================================

func TestNewSaveAsState_Prefill(t *testing.T) {
	state := NewSaveAsState("/tmp/notes.txt")

	if got := state.GetPath(); got != "/tmp/notes.txt" {
		t.Errorf("expected prefilled path, got %q", got)
	}
}

func TestSaveAsState_GetPath_Empty(t *testing.T) {
	state := NewSaveAsState("")

	if got := state.GetPath(); got != "" {
		t.Errorf("expected empty path, got %q", got)
	}
}

func TestSaveAsState_GetPath_Cleans(t *testing.T) {
	state := NewSaveAsState("  /tmp//a/../notes.txt  ")

	if got := state.GetPath(); got != "/tmp/notes.txt" {
		t.Errorf("expected cleaned path /tmp/notes.txt, got %q", got)
	}
}

// =============================================================================
// RecentState Tests
// =============================================================================

func TestRecentState_Empty(t *testing.T) {
	state := NewRecentState(nil)

	if state.SelectedPath() != "" {
		t.Errorf("expected empty selection, got %q", state.SelectedPath())
	}

	view := state.Render()
	if !strings.Contains(view, "No recent files") {
		t.Error("empty state should say there are no recent files")
	}
}

func TestRecentState_Navigation(t *testing.T) {
	paths := []string{"/a.txt", "/b.txt", "/c.txt"}
	state := NewRecentState(paths)

	if state.SelectedPath() != "/a.txt" {
		t.Errorf("expected first path selected, got %q", state.SelectedPath())
	}

	state.Update(keyPress("down"))
	if state.SelectedPath() != "/b.txt" {
		t.Errorf("expected /b.txt after down, got %q", state.SelectedPath())
	}

	state.Update(keyPress("up"))
	state.Update(keyPress("up"))
	if state.SelectedPath() != "/a.txt" {
		t.Errorf("expected /a.txt at top, got %q", state.SelectedPath())
	}
}

func TestRecentState_Scrolling(t *testing.T) {
	var paths []string
	for i := 0; i < RecentFilesMaxVisible+5; i++ {
		paths = append(paths, "/file"+strings.Repeat("x", i)+".txt")
	}
	state := NewRecentState(paths)

	for i := 0; i < len(paths)-1; i++ {
		state.Update(keyPress("down"))
	}

	if state.SelectedPath() != paths[len(paths)-1] {
		t.Errorf("expected last path selected, got %q", state.SelectedPath())
	}

	if state.ScrollOffset != len(paths)-RecentFilesMaxVisible {
		t.Errorf("expected scroll offset %d, got %d", len(paths)-RecentFilesMaxVisible, state.ScrollOffset)
	}
}

// =============================================================================
// SettingsState Tests
// =============================================================================

func TestNewSettingsState(t *testing.T) {
	state := NewSettingsState(
		[]string{"mocha", "latte"},
		[]string{"Catppuccin Mocha", "Catppuccin Latte"},
		"mocha",
		true, true, false,
	)

	if state.GetSelectedTheme() != "mocha" {
		t.Errorf("expected selected theme mocha, got %q", state.GetSelectedTheme())
	}

	if state.OriginalTheme != "mocha" {
		t.Errorf("expected original theme mocha, got %q", state.OriginalTheme)
	}

	if !state.NotificationsEnabled {
		t.Error("expected notifications enabled")
	}

	if !state.ShowWeather {
		t.Error("expected weather enabled")
	}

	if state.ShowStats {
		t.Error("expected stats disabled")
	}
}

func TestSettingsState_SyncFromMultiSelect(t *testing.T) {
	state := NewSettingsState(
		[]string{"mocha", "latte"}, []string{"Mocha", "Latte"}, "latte",
		false, false, true,
	)

	// Simulate the multiselect binding changing
	state.generalOptions = []string{optionNotifications, optionWeather}
	state.syncFromMultiSelect()

	if !state.NotificationsEnabled || !state.ShowWeather {
		t.Error("expected notifications and weather enabled after sync")
	}
	if state.ShowStats {
		t.Error("expected stats disabled after sync")
	}
}

// =============================================================================
// OpenState Tests
// =============================================================================

func TestNewOpenState_FallbackDirectory(t *testing.T) {
	state := NewOpenState("/nonexistent/path/zzz")

	if state.Picker.CurrentDirectory != "." {
		t.Errorf("expected fallback to current directory, got %q", state.Picker.CurrentDirectory)
	}
}

func TestNewOpenState_UsesGivenDirectory(t *testing.T) {
	dir := t.TempDir()
	state := NewOpenState(dir)

	if state.Picker.CurrentDirectory != dir {
		t.Errorf("expected directory %q, got %q", dir, state.Picker.CurrentDirectory)
	}

	if state.HasSelection() {
		t.Error("expected no selection initially")
	}
}

// =============================================================================
// HelpState Tests
// =============================================================================

func TestNewHelpState(t *testing.T) {
	state := NewHelpState()

	if len(state.Sections) == 0 {
		t.Fatal("expected help sections")
	}

	view := state.Render()
	for _, want := range []string{"ctrl+s", "ctrl+o", "ctrl+q"} {
		if !strings.Contains(view, want) {
			t.Errorf("help should list %q", want)
		}
	}
}

func TestHelpState_Title(t *testing.T) {
	state := &HelpState{}
	if state.Title() != "Keyboard Shortcuts" {
		t.Errorf("expected title 'Keyboard Shortcuts', got %q", state.Title())
	}
}
