package mock

import (
	"context"

	"podnote"
)

var _ podnote.NoteWriter = (*NoteWriter)(nil)

// NoteWriter is a mock implementation of podnote.NoteWriter.
type NoteWriter struct {
	CreateNoteFn func(ctx context.Context, name, content string) (string, error)
}

func (w *NoteWriter) CreateNote(ctx context.Context, name, content string) (string, error) {
	return w.CreateNoteFn(ctx, name, content)
}
