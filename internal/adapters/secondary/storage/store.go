package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// FileStore persists generated decks as flat files under a single root
// directory. Filenames are timestamped by the caller, so concurrent requests
// never collide; the store only has to keep writes atomic and names inside
// the root.
type FileStore struct {
	root string
}

// NewFileStore creates a store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving output dir: %w", err)
	}

	if err := os.MkdirAll(abs, 0750); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", abs, err)
	}

	return &FileStore{root: abs}, nil
}

// Root returns the absolute store root
func (s *FileStore) Root() string {
	return s.root
}

// cleanName rejects names that would escape the store root
func (s *FileStore) cleanName(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("artifact filename cannot be empty")
	}
	if filepath.Base(filename) != filename || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid artifact filename: %s", filename)
	}
	return filepath.Join(s.root, filename), nil
}

// Save writes data under filename via a temp file and rename, so a partially
// written deck is never resolvable.
func (s *FileStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	path, err := s.cleanName(filename)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.root, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("writing artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("closing artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("publishing artifact: %w", err)
	}

	return path, nil
}

// Resolve returns the absolute path of a stored artifact
func (s *FileStore) Resolve(filename string) (string, error) {
	path, err := s.cleanName(filename)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("artifact %s: %w", filename, err)
	}

	return path, nil
}

// Ensure FileStore implements ports.ArtifactStore
var _ ports.ArtifactStore = (*FileStore)(nil)
