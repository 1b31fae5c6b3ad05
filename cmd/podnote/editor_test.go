package main_test

import (
	"bytes"
	"strings"
	"testing"

	main "podnote/cmd/podnote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdioEditor(t *testing.T) {
	t.Parallel()

	t.Run("selection reads stdin once and caches it", func(t *testing.T) {
		t.Parallel()

		e := main.NewStdioEditor(strings.NewReader("selected text"), &bytes.Buffer{})

		first, err := e.Selection()
		require.NoError(t, err)
		second, err := e.Selection()
		require.NoError(t, err)

		assert.Equal(t, "selected text", first)
		assert.Equal(t, "selected text", second)
	})

	t.Run("replace selection writes to output", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		e := main.NewStdioEditor(strings.NewReader(""), &out)

		require.NoError(t, e.ReplaceSelection("rewritten"))
		assert.Equal(t, "rewritten", out.String())
	})

	t.Run("insert at cursor writes to output", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		e := main.NewStdioEditor(strings.NewReader(""), &out)

		require.NoError(t, e.InsertAtCursor("# Note\n"))
		assert.Equal(t, "# Note\n", out.String())
	})
}

func TestStderrNotifier(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n := main.NewStderrNotifier(&out)

	n.Notify("Loading podcast info")

	assert.Equal(t, "Loading podcast info\n", out.String())
}
