package main_test

import (
	"os"
	"path/filepath"
	"testing"

	main "podnote/cmd/podnote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("reads settings from an explicit config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "podnote.yaml")
		content := "template: \"# {{Title}}\"\nfilename: \"{{Title}}\"\nfolder: Podcasts\nat_cursor: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		s, err := main.LoadSettings(path)
		require.NoError(t, err)

		assert.Equal(t, "# {{Title}}", s.Template)
		assert.Equal(t, "{{Title}}", s.Filename)
		assert.Equal(t, "Podcasts", s.Folder)
		assert.True(t, s.AtCursor)
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
