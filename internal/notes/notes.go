// Package notes stores the note files attached to calendar items.
// Notes are content-addressed: a note's identifier is the hex sha1 of
// its body, which is also the token written after '>' in the apts
// file. Identical bodies share one file.
package notes

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Store manages the notes directory.
type Store struct {
	dir string
}

// NewStore returns a store over dir. The directory is created lazily
// on the first Add.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file path backing the given note identifier.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id)
}

// Add writes text as a new note and returns its identifier. Adding
// the same text twice returns the same identifier and keeps one file.
func (s *Store) Add(text string) (string, error) {
	sum := sha1.Sum([]byte(text))
	id := hex.EncodeToString(sum[:])

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("error creating notes directory: %v", err)
	}
	if err := os.WriteFile(s.Path(id), []byte(text), 0644); err != nil {
		return "", fmt.Errorf("error writing note %s: %v", id, err)
	}
	return id, nil
}

// Read resolves an identifier to the note body.
func (s *Store) Read(id string) (string, error) {
	content, err := os.ReadFile(s.Path(id))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Release removes the note file for id. A missing file is tolerated:
// the note may already have been released through another record.
func (s *Store) Release(id string) error {
	if id == "" {
		return nil
	}
	if err := os.Remove(s.Path(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
