package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidDocID reports a document identifier that cannot name a file.
var ErrInvalidDocID = errors.New("persist: invalid document id")

// FileStore is a file-backed Adapter: one JSON document per file under a
// single directory. Writes go through a temporary file and a rename so a
// crash mid-save never corrupts the previous version.
type FileStore struct {
	dir string
}

var _ Adapter = (*FileStore)(nil)

// NewFileStore creates a store rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("persist: creating store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) docPath(docID string) (string, error) {
	if docID == "" || strings.ContainsAny(docID, `/\`) || strings.Contains(docID, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDocID, docID)
	}
	return filepath.Join(s.dir, docID+".json"), nil
}

// Save writes the document atomically.
func (s *FileStore) Save(ctx context.Context, docID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.docPath(docID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+docID+"-*")
	if err != nil {
		return fmt.Errorf("persist: creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("persist: writing %s: %w", docID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist: writing %s: %w", docID, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist: replacing %s: %w", docID, err)
	}
	return nil
}

// Load reads the document. A document that was never saved returns
// (nil, nil).
func (s *FileStore) Load(ctx context.Context, docID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.docPath(docID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist: reading %s: %w", docID, err)
	}
	return data, nil
}
