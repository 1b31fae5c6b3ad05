package mock

import "podnote"

var _ podnote.Editor = (*Editor)(nil)

// Editor is a mock implementation of podnote.Editor.
type Editor struct {
	SelectionFn        func() (string, error)
	ReplaceSelectionFn func(text string) error
	InsertAtCursorFn   func(text string) error
}

func (e *Editor) Selection() (string, error) {
	return e.SelectionFn()
}

func (e *Editor) ReplaceSelection(text string) error {
	return e.ReplaceSelectionFn(text)
}

func (e *Editor) InsertAtCursor(text string) error {
	return e.InsertAtCursorFn(text)
}
