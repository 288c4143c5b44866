package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Service runs each calendar operation as load, check, mutate, persist
// against a Store. The mutex serializes those cycles within one process.
type Service struct {
	store Store
	mu    sync.Mutex
	newID func() string
}

// NewService returns a service over store
func NewService(store Store) *Service {
	return &Service{
		store: store,
		newID: func() string { return uuid.New().String() },
	}
}

// Create validates rec and appends it as a new event, returning its id
func (s *Service) Create(ctx context.Context, rec Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if dateInUse(events, rec.Date, "") {
		return "", ErrDateTaken
	}

	event := Event{ID: s.newID()}
	rec.Apply(&event)
	events = append(events, event)

	if err := s.save(ctx, events); err != nil {
		return "", err
	}
	return event.ID, nil
}

// List returns all events in storage order
func (s *Service) List(ctx context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the event with the given id
func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return Event{}, err
	}
	i := indexOf(events, id)
	if i < 0 {
		return Event{}, ErrNotFound
	}
	return events[i], nil
}

// Update replaces the fields of an existing event. A missing id is reported
// before a date collision.
func (s *Service) Update(ctx context.Context, id string, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(events, id)
	if i < 0 {
		return ErrNotFound
	}
	if dateInUse(events, rec.Date, id) {
		return ErrDateTaken
	}

	rec.Apply(&events[i])
	return s.save(ctx, events)
}

// Delete removes the event with the given id
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load(ctx)
	if err != nil {
		return err
	}

	initial := len(events)
	kept := make([]Event, 0, initial)
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == initial {
		return ErrNotFound
	}
	return s.save(ctx, kept)
}

func (s *Service) load(ctx context.Context) ([]Event, error) {
	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}
	return events, nil
}

func (s *Service) save(ctx context.Context, events []Event) error {
	if err := s.store.Save(ctx, events); err != nil {
		return fmt.Errorf("save calendar: %w", err)
	}
	return nil
}

// dateInUse reports whether an event other than exceptID already has date
func dateInUse(events []Event, date, exceptID string) bool {
	for _, e := range events {
		if e.Date == date && (exceptID == "" || e.ID != exceptID) {
			return true
		}
	}
	return false
}

func indexOf(events []Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
