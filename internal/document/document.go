// Package document holds the in-memory state of the file being edited:
// its text, its backing file path, and whether unsaved changes exist.
//
// All file I/O goes through Load, Save, and SaveAs. A failed read or write
// never changes the in-memory state, so the editor can always fall back to
// what the user was looking at.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jot-sh/jot/internal/errors"
	"github.com/jot-sh/jot/internal/logger"
)

// UntitledName is the display name for a document with no backing file.
const UntitledName = "Untitled"

// Document is the single editing session state. It is owned by the UI event
// loop and is not safe for concurrent use.
type Document struct {
	text  string
	path  string // empty when the document has no backing file
	dirty bool
}

// New returns an empty, clean document with no backing file.
func New() *Document {
	return &Document{}
}

// Text returns the current buffer content.
func (d *Document) Text() string {
	return d.text
}

// SetText replaces the buffer content. The document becomes dirty only if
// the content actually changed; the editor widget echoes its value on every
// update, and an identical echo must not flip the flag.
func (d *Document) SetText(text string) {
	if text == d.text {
		return
	}
	d.text = text
	d.dirty = true
}

// Path returns the backing file path, or "" when there is none.
func (d *Document) Path() string {
	return d.path
}

// Dirty reports whether unsaved changes exist.
func (d *Document) Dirty() bool {
	return d.dirty
}

// HasPath reports whether the document has a backing file.
func (d *Document) HasPath() bool {
	return d.path != ""
}

// DisplayName returns the base name of the backing file, or UntitledName.
func (d *Document) DisplayName() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// Dir returns the directory of the backing file, or "" when there is none.
func (d *Document) Dir() string {
	if d.path == "" {
		return ""
	}
	return filepath.Dir(d.path)
}

// Reset discards the document content and backing file, returning to the
// empty clean state. The caller is responsible for the unsaved-changes
// confirmation; Reset itself never prompts.
func (d *Document) Reset() {
	d.text = ""
	d.path = ""
	d.dirty = false
	logger.Debug("Document: reset to empty")
}

// Load replaces the document with the contents of path, normalizing CRLF
// and bare CR line endings to LF. On read failure the document is left
// exactly as it was.
func (d *Document) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Document: load failed: path=%s err=%v", path, err)
		return errors.FileReadFailed(path, err)
	}
	// The editor widget treats every \r as a line break, so the stored text
	// must use LF endings to match what the widget echoes back.
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	d.text = text
	d.path = path
	d.dirty = false
	logger.Info("Document: loaded %s (%d bytes)", path, len(data))
	return nil
}

// Save writes the buffer to the backing file. It returns an error with kind
// KindInvalid when the document has no path; callers are expected to route
// that case through SaveAs. On write failure the dirty flag stays set.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.NoPath()
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the buffer to path and adopts it as the backing file. On
// write failure neither the path nor the dirty flag changes.
func (d *Document) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(d.text), 0644); err != nil {
		logger.Error("Document: save failed: path=%s err=%v", path, err)
		return errors.FileWriteFailed(path, err)
	}
	d.path = path
	d.dirty = false
	logger.Info("Document: saved %s (%d bytes)", path, len(d.text))
	return nil
}
