package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/talentscout/talentscout/internal/candidate"
)

// DefaultPath matches the legacy data file name.
const DefaultPath = "candidate_data.json"

// ErrUnavailable marks a store that exists but cannot be read or written.
// A missing or empty data file is not an error; it is an empty store.
var ErrUnavailable = errors.New("candidate store is unavailable")

// Store persists completed interviews as a single JSON document mapping
// candidate email to record. The whole mapping is rewritten on every upsert
// through a temp-file-then-rename, so the file on disk is always either the
// old complete mapping or the new one. The mutex serializes the
// read-modify-write cycle against concurrent upserts in this process.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// LoadAll reads the full mapping from disk. A missing or zero-length file
// yields an empty mapping.
func (s *Store) LoadAll() (map[string]candidate.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadAll()
}

// Upsert sets the record under its candidate email and rewrites the mapping
// atomically. Last write wins for repeated emails. The email is trimmed and
// written back onto the record so the mapping key and info.email never
// disagree.
func (s *Store) Upsert(record candidate.Record) error {
	email := strings.TrimSpace(record.Info.Email)
	if email == "" {
		return errors.New("record email is required")
	}
	record.Info.Email = email

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll()
	if err != nil {
		return err
	}

	records[email] = record

	return s.writeAll(records)
}

func (s *Store) loadAll() (map[string]candidate.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]candidate.Record{}, nil
		}
		return nil, fmt.Errorf("%w: opening %q: %v", ErrUnavailable, s.path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %q: %v", ErrUnavailable, s.path, err)
	}

	if stat.Size() == 0 {
		return map[string]candidate.Record{}, nil
	}

	records := map[string]candidate.Record{}
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", ErrUnavailable, s.path, err)
	}

	return records, nil
}

// writeAll rewrites the mapping through a temp file in the same directory,
// fsyncs it and renames it over the target.
func (s *Store) writeAll(records map[string]candidate.Record) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".candidates-*.json")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrUnavailable, err)
	}

	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: encoding records: %v", ErrUnavailable, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: flushing temp file: %v", ErrUnavailable, err)
	}

	name := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing temp file: %v", ErrUnavailable, err)
	}

	if err := os.Rename(name, s.path); err != nil {
		return fmt.Errorf("%w: replacing %q: %v", ErrUnavailable, s.path, err)
	}

	tmp = nil
	return nil
}
