package store

import (
	"time"

	"github.com/tgienger/ctrack/internal/models"
)

// Store is a mutable handle over State for the UI event loop.
// It is not safe for concurrent use.
type Store struct {
	state State
	now   func() time.Time
}

// New creates a store seeded with initial
func New(initial State) *Store {
	return &Store{
		state: initial.Clone(),
		now:   time.Now,
	}
}

// SetClock replaces the time source, mainly for tests
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the store's current time
func (s *Store) Now() time.Time {
	return s.now()
}

// State returns a copy of the current state
func (s *Store) State() State {
	return s.state.Clone()
}

// Active returns the active campaigns in insertion order
func (s *Store) Active() []models.Campaign {
	return cloneList(s.state.Active)
}

// Archived returns the archived campaigns in archive order
func (s *Store) Archived() []models.Campaign {
	return cloneList(s.state.Archived)
}

// Get returns a copy of the active or archived campaign with id
func (s *Store) Get(id string) (models.Campaign, bool) {
	return s.state.Get(id)
}

// Add validates c and appends it to the active list
func (s *Store) Add(c models.Campaign) (models.Campaign, error) {
	next, added, err := s.state.Add(c, s.now())
	if err != nil {
		return models.Campaign{}, err
	}
	s.state = next
	return added, nil
}

// Edit replaces the fields of an active campaign, keeping its id and creation time
func (s *Store) Edit(id string, c models.Campaign) (models.Campaign, error) {
	next, edited, err := s.state.Edit(id, c, s.now())
	if err != nil {
		return models.Campaign{}, err
	}
	s.state = next
	return edited, nil
}

// Archive moves an active campaign to the archive
func (s *Store) Archive(id string) (models.Campaign, error) {
	next, archived, err := s.state.Archive(id, s.now())
	if err != nil {
		return models.Campaign{}, err
	}
	s.state = next
	return archived, nil
}

// AddInsightNote appends a note to an archived campaign
func (s *Store) AddInsightNote(id, content string) (models.Campaign, error) {
	next, c, err := s.state.AddInsightNote(id, content, s.now())
	if err != nil {
		return models.Campaign{}, err
	}
	s.state = next
	return c, nil
}

// DeleteInsightNote removes the note at noteIndex from an archived campaign
func (s *Store) DeleteInsightNote(id string, noteIndex int) (models.Campaign, error) {
	next, c, err := s.state.DeleteInsightNote(id, noteIndex)
	if err != nil {
		return models.Campaign{}, err
	}
	s.state = next
	return c, nil
}

// Status derives the status of c as of the store's clock
func (s *Store) Status(c models.Campaign) models.Status {
	return models.DeriveStatus(c.EndDate, s.now())
}
