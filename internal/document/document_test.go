package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jot-sh/jot/internal/errors"
)

func TestNew(t *testing.T) {
	doc := New()

	if doc.Text() != "" {
		t.Errorf("Text() = %q, want empty", doc.Text())
	}
	if doc.Path() != "" {
		t.Errorf("Path() = %q, want empty", doc.Path())
	}
	if doc.Dirty() {
		t.Error("new document should not be dirty")
	}
	if doc.HasPath() {
		t.Error("new document should not have a path")
	}
	if doc.DisplayName() != UntitledName {
		t.Errorf("DisplayName() = %q, want %q", doc.DisplayName(), UntitledName)
	}
}

func TestSetText_SetsDirty(t *testing.T) {
	doc := New()

	doc.SetText("hello")

	if doc.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", doc.Text(), "hello")
	}
	if !doc.Dirty() {
		t.Error("edit should set dirty")
	}
}

func TestSetText_IdenticalContentKeepsClean(t *testing.T) {
	doc := New()
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := doc.Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// The textarea echoes its value every update; an unchanged echo
	// must not mark the document dirty.
	doc.SetText("content")

	if doc.Dirty() {
		t.Error("identical SetText should not set dirty")
	}
}

func TestLoad(t *testing.T) {
	doc := New()
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := doc.Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if doc.Text() != "line one\nline two\n" {
		t.Errorf("Text() = %q after load", doc.Text())
	}
	if doc.Path() != path {
		t.Errorf("Path() = %q, want %q", doc.Path(), path)
	}
	if doc.Dirty() {
		t.Error("dirty should be false after successful load")
	}
	if doc.DisplayName() != "notes.txt" {
		t.Errorf("DisplayName() = %q, want %q", doc.DisplayName(), "notes.txt")
	}
}

func TestLoad_NormalizesLineEndings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"crlf", "line one\r\nline two\r\n", "line one\nline two\n"},
		{"bare cr", "line one\rline two", "line one\nline two"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New()
			path := filepath.Join(t.TempDir(), "notes.txt")
			if err := os.WriteFile(path, []byte(tt.raw), 0644); err != nil {
				t.Fatal(err)
			}

			if err := doc.Load(path); err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if doc.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", doc.Text(), tt.want)
			}
			if doc.Dirty() {
				t.Error("dirty should be false after successful load")
			}
		})
	}
}

func TestLoad_FailureLeavesStateUnchanged(t *testing.T) {
	doc := New()
	doc.SetText("unsaved work")

	err := doc.Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	if err == nil {
		t.Fatal("Load() of missing file should fail")
	}
	if !errors.Is(err, errors.KindRead) {
		t.Errorf("error kind = %v, want KindRead", errors.GetKind(err))
	}
	if doc.Text() != "unsaved work" {
		t.Errorf("Text() = %q, state must be unchanged on read failure", doc.Text())
	}
	if doc.Path() != "" {
		t.Errorf("Path() = %q, state must be unchanged on read failure", doc.Path())
	}
	if !doc.Dirty() {
		t.Error("dirty must stay true on read failure")
	}
}

func TestSave_WithoutPath(t *testing.T) {
	doc := New()
	doc.SetText("text")

	err := doc.Save()

	if err == nil {
		t.Fatal("Save() without a path should fail")
	}
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
	}
	if !doc.Dirty() {
		t.Error("dirty must stay true when save fails")
	}
}

func TestSaveAs(t *testing.T) {
	doc := New()
	doc.SetText("hello")
	path := filepath.Join(t.TempDir(), "a.txt")

	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}

	if doc.Path() != path {
		t.Errorf("Path() = %q, want %q", doc.Path(), path)
	}
	if doc.Dirty() {
		t.Error("dirty should be false after successful save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("file content = %q, want %q", data, "hello")
	}
}

func TestSaveAs_FailureLeavesStateUnchanged(t *testing.T) {
	doc := New()
	doc.SetText("content")

	// Directory does not exist, so the write fails.
	badPath := filepath.Join(t.TempDir(), "missing-dir", "a.txt")
	err := doc.SaveAs(badPath)

	if err == nil {
		t.Fatal("SaveAs() into missing directory should fail")
	}
	if !errors.Is(err, errors.KindWrite) {
		t.Errorf("error kind = %v, want KindWrite", errors.GetKind(err))
	}
	if doc.Path() != "" {
		t.Errorf("Path() = %q, must be unchanged on write failure", doc.Path())
	}
	if !doc.Dirty() {
		t.Error("dirty must stay true on write failure")
	}
}

func TestSave_AfterOpenKeepsClean(t *testing.T) {
	doc := New()
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("stable"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := doc.Load(path); err != nil {
		t.Fatal(err)
	}

	// Save immediately after open with no intervening edit.
	if err := doc.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if doc.Dirty() {
		t.Error("dirty must stay false after open then save")
	}
}

func TestRoundTrip(t *testing.T) {
	content := "héllo wörld\n\ttabs and émoji \U0001F319\nno trailing newline"
	path := filepath.Join(t.TempDir(), "roundtrip.txt")

	src := New()
	src.SetText(content)
	if err := src.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}

	dst := New()
	if err := dst.Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if dst.Text() != content {
		t.Errorf("round-trip text = %q, want %q", dst.Text(), content)
	}
}

func TestReset(t *testing.T) {
	doc := New()
	path := filepath.Join(t.TempDir(), "a.txt")
	doc.SetText("something")
	if err := doc.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	doc.SetText("edited again")

	doc.Reset()

	if doc.Text() != "" || doc.Path() != "" || doc.Dirty() {
		t.Errorf("Reset() left state text=%q path=%q dirty=%v", doc.Text(), doc.Path(), doc.Dirty())
	}
}

// TestEditSaveAsNewScenario walks the full lifecycle: type into an empty
// document, save it out, then New with nothing further to confirm.
func TestEditSaveAsNewScenario(t *testing.T) {
	doc := New()
	if doc.Dirty() {
		t.Fatal("empty document must start clean")
	}

	doc.SetText("hello")
	if !doc.Dirty() {
		t.Fatal("typing must set dirty")
	}

	path := filepath.Join(t.TempDir(), "a.txt")
	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}
	if doc.Path() != path || doc.Dirty() {
		t.Fatalf("after save: path=%q dirty=%v", doc.Path(), doc.Dirty())
	}

	// New with no further edits needs no confirmation (dirty is false)
	// and resets to an empty document with no path.
	doc.Reset()
	if doc.Text() != "" || doc.HasPath() || doc.Dirty() {
		t.Errorf("after new: text=%q path=%q dirty=%v", doc.Text(), doc.Path(), doc.Dirty())
	}
}

func TestDir(t *testing.T) {
	doc := New()
	if doc.Dir() != "" {
		t.Errorf("Dir() = %q for pathless document, want empty", doc.Dir())
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := doc.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if doc.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", doc.Dir(), dir)
	}
}
