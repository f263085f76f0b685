package backupfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

// Store keeps records that were generated but not yet uploaded in a JSON file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Save writes records as an indented JSON array, replacing any previous file.
// The file is written to a temporary sibling first and renamed into place.
func (s *Store) Save(records []domain.Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if records == nil {
		records = []domain.Record{}
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("backupfile: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("backupfile: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("backupfile: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("backupfile: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("backupfile: rename: %w", err)
	}
	return nil
}

// Load reads the saved records. A missing file returns domain.ErrNotFound;
// a file that is not a JSON array of records returns an error wrapping domain.ErrParse.
func (s *Store) Load() ([]domain.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("backupfile: %s: %w", s.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("backupfile: read: %w", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("backupfile: decode %s: %w: %w", s.path, domain.ErrParse, err)
	}
	return records, nil
}

// Exists reports whether the backup file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Remove deletes the backup file. Removing a missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("backupfile: remove: %w", err)
	}
	return nil
}
