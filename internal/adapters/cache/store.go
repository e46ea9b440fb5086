// Package cache persists lint results between runs, keyed by manifest path.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore using a file-per-manifest strategy.
type Store struct {
	dir string
}

// NewStore creates a result store backed by the default cache directory.
func NewStore() *Store {
	return NewStoreAt(domain.DefaultResultStoreDir())
}

// NewStoreAt creates a result store backed by the given directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Get retrieves the record for a manifest path. A missing record and a
// record that no longer unmarshals both report nil, nil: stale cache
// entries are recomputed, never fatal.
func (s *Store) Get(path string) (*domain.LintRecord, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.filename(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read result record")
	}

	var record domain.LintRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}

	return &record, nil
}

// Put stores the record.
func (s *Store) Put(record domain.LintRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal result record")
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create result store directory")
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(s.filename(record.Path), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write result record")
	}

	return nil
}

func (s *Store) filename(path string) string {
	hash := sha256.Sum256([]byte(path))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
