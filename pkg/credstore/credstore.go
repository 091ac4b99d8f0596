// Package credstore is the reference file-backed credential store for
// the CLI host (SPEC_FULL.md "Credential store"). The core only ever
// depends on the abstract load/store/clear interface of spec §6.3; this
// package is one concrete implementation of it, built on spf13/afero so
// its own tests run against an in-memory filesystem instead of touching
// disk.
package credstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// fileMode is the permission bits a credential file is written with;
// the key is bearer material, so group/other access is never granted.
const fileMode = 0o600

// FileStore persists a single bearer API key at path on fs.
type FileStore struct {
	fs   afero.Fs
	path string
}

// DefaultPath returns ~/.config/anytype/credentials, resolved via
// os.UserHomeDir.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("anytype/credstore: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "anytype", "credentials"), nil
}

// NewFileStore builds a FileStore backed by fs at path. Pass
// afero.NewOsFs() for real use and afero.NewMemMapFs() in tests.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Load returns the stored key, or "" if none has been stored yet.
func (s *FileStore) Load() (string, error) {
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("anytype/credstore: load: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Store writes key to disk, creating the parent directory if needed.
func (s *FileStore) Store(key string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("anytype/credstore: store: create directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(key), fileMode); err != nil {
		return fmt.Errorf("anytype/credstore: store: %w", err)
	}
	return nil
}

// Clear removes the stored credential, if any.
func (s *FileStore) Clear() error {
	err := s.fs.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("anytype/credstore: clear: %w", err)
	}
	return nil
}
