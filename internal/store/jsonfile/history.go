// Package jsonfile provides JSON file backed stores.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hay-kot/bored/internal/core/history"
)

var _ history.Store = (*HistoryStore)(nil)

// historyFile is the root JSON structure stored on disk.
type historyFile struct {
	Entries []history.Entry `json:"entries"`
}

// HistoryStore implements history.Store using a JSON file for persistence.
type HistoryStore struct {
	path       string
	maxEntries int
	mu         sync.RWMutex
}

// NewHistoryStore creates a new JSON file history store at the given path.
// maxEntries limits stored entries (0 means unlimited).
func NewHistoryStore(path string, maxEntries int) *HistoryStore {
	return &HistoryStore{path: path, maxEntries: maxEntries}
}

// List returns all history entries, newest first.
func (s *HistoryStore) List(_ context.Context) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}
	return f.Entries, nil
}

// Save prepends entry and drops the oldest entries beyond maxEntries.
func (s *HistoryStore) Save(_ context.Context, entry history.Entry) error {
	return s.update(func(f *historyFile) {
		f.Entries = append([]history.Entry{entry}, f.Entries...)
		if s.maxEntries > 0 && len(f.Entries) > s.maxEntries {
			f.Entries = f.Entries[:s.maxEntries]
		}
	})
}

// Clear removes all history entries. It does not read the existing file, so
// it also resets a corrupted one.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(historyFile{Entries: []history.Entry{}})
}

// update applies fn to the stored file under the write lock.
func (s *HistoryStore) update(fn func(*historyFile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	fn(&f)
	return s.save(f)
}

// load reads the history file; a missing or empty file is an empty history.
func (s *HistoryStore) load() (historyFile, error) {
	var f historyFile

	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		return f, nil
	case err != nil:
		return f, fmt.Errorf("read history file: %w", err)
	case len(data) == 0:
		return f, nil
	}

	if err := json.Unmarshal(data, &f); err != nil {
		return historyFile{}, fmt.Errorf("history file corrupted (run 'bored history --clear' to reset): %w", err)
	}
	return f, nil
}

// save writes via a temp file and rename so readers never see a partial file.
func (s *HistoryStore) save(f historyFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename history file: %w", err)
	}
	return nil
}
