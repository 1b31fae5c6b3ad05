package podnote

import "context"

// NoteWriter persists rendered notes.
type NoteWriter interface {
	// CreateNote persists a note under the given name (without
	// extension) and returns the name actually used. Implementations
	// decide the collision policy; the returned name is the one callers
	// must use when linking to the note.
	CreateNote(ctx context.Context, name, content string) (string, error)
}

// Editor is the text-editing surface notes are read from and written to.
// Operations return ENOTFOUND when no editor is active.
type Editor interface {
	// Selection returns the currently selected text.
	Selection() (string, error)

	// ReplaceSelection replaces the current selection with text.
	ReplaceSelection(text string) error

	// InsertAtCursor inserts text at the current cursor position.
	InsertAtCursor(text string) error
}

// Notifier shows fire-and-forget user-visible messages. Used for loading,
// error, and unsupported-service signals.
type Notifier interface {
	Notify(message string)
}
