package main

import (
	"fmt"
	"io"

	"podnote"
)

// Ensure the adapters satisfy the domain interfaces at compile time.
var (
	_ podnote.Editor   = (*StdioEditor)(nil)
	_ podnote.Notifier = (*StderrNotifier)(nil)
)

// StdioEditor adapts stdin/stdout to the editor interface: the piped
// input is the selection, and replaced or inserted text goes to stdout.
type StdioEditor struct {
	in  io.Reader
	out io.Writer

	selection *string
}

// NewStdioEditor creates a StdioEditor over the given streams.
func NewStdioEditor(in io.Reader, out io.Writer) *StdioEditor {
	return &StdioEditor{in: in, out: out}
}

// Selection reads the whole input stream once and returns it; repeated
// calls return the cached text.
func (e *StdioEditor) Selection() (string, error) {
	if e.selection == nil {
		data, err := io.ReadAll(e.in)
		if err != nil {
			return "", err
		}
		text := string(data)
		e.selection = &text
	}
	return *e.selection, nil
}

// ReplaceSelection writes the rewritten text to the output stream.
func (e *StdioEditor) ReplaceSelection(text string) error {
	_, err := io.WriteString(e.out, text)
	return err
}

// InsertAtCursor writes the text to the output stream.
func (e *StdioEditor) InsertAtCursor(text string) error {
	_, err := io.WriteString(e.out, text)
	return err
}

// StderrNotifier prints user-facing notices to a stream, one per line.
type StderrNotifier struct {
	w io.Writer
}

// NewStderrNotifier creates a StderrNotifier writing to w.
func NewStderrNotifier(w io.Writer) *StderrNotifier {
	return &StderrNotifier{w: w}
}

// Notify prints the message.
func (n *StderrNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}
