// Package fs provides file-based note persistence and template loading.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"podnote"
)

// maxSuffix bounds the collision-suffix search so a pathological folder
// cannot loop forever.
const maxSuffix = 1000

// Ensure Vault implements podnote.NoteWriter at compile time.
var _ podnote.NoteWriter = (*Vault)(nil)

// Vault writes notes as markdown files into a folder.
//
// Collision policy: an existing note with byte-identical content is
// reused (its name is returned and nothing is written); an existing note
// with different content pushes the new note to the next free numeric
// suffix ("name 2", "name 3", ...). Existing files are never overwritten.
type Vault struct {
	folder string
}

// NewVault creates a Vault rooted at folder. An empty folder means the
// current directory.
func NewVault(folder string) *Vault {
	if folder == "" {
		folder = "."
	}
	return &Vault{folder: folder}
}

// CreateNote persists a note and returns the name actually used, which
// callers embed in wiki references to the note.
func (v *Vault) CreateNote(_ context.Context, name, content string) (string, error) {
	if name == "" {
		name = "podcast-" + uuid.NewString()[:8]
	}

	if err := os.MkdirAll(v.folder, 0755); err != nil {
		return "", err
	}

	candidate := name
	for i := 2; ; i++ {
		path := filepath.Join(v.folder, candidate+".md")

		existing, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return candidate, os.WriteFile(path, []byte(content), 0644)
		}
		if err != nil {
			return "", err
		}

		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return candidate, nil
		}

		if i > maxSuffix {
			return "", podnote.Errorf(podnote.EINTERNAL, "no free name for note %q", name)
		}
		candidate = name + " " + strconv.Itoa(i)
	}
}

// ReadTemplate reads a note template from a file. Paths without an
// extension get ".md" appended, matching how template paths are entered
// in settings.
func ReadTemplate(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".md"
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", podnote.Errorf(podnote.ENOTFOUND, "template file %q not found", path)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
