package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"
)

// Store persists the whole event collection at once
type Store interface {
	Load(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, events []Event) error
}

// FileStore keeps the collection as a pretty-printed JSON array in one file
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the collection. A missing file or invalid JSON is treated as
// an empty collection; the latter is logged.
func (s *FileStore) Load(ctx context.Context) ([]Event, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		slog.WarnContext(ctx, "calendar file is not valid JSON, treating as empty",
			"path", s.Path, "error", err)
		return []Event{}, nil
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// LoadStrict reads the collection like Load but reports invalid JSON
func (s *FileStore) LoadStrict() ([]Event, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return events, nil
}

// Save overwrites the file with the full collection. It writes a temp file
// first and renames it over the data file.
func (s *FileStore) Save(ctx context.Context, events []Event) error {
	if events == nil {
		events = []Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	tmpFile := s.Path + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", tmpFile, err)
	}
	if err := os.Rename(tmpFile, s.Path); err != nil {
		return fmt.Errorf("replace %s: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps the collection in memory
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryStore returns a store seeded with a copy of events
func NewMemoryStore(events ...Event) *MemoryStore {
	return &MemoryStore{events: slices.Clone(events)}
}

func (s *MemoryStore) Load(ctx context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.events == nil {
		return []Event{}, nil
	}
	return slices.Clone(s.events), nil
}

func (s *MemoryStore) Save(ctx context.Context, events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = slices.Clone(events)
	return nil
}
