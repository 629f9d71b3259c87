package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tgienger/ctrack/internal/models"
)

// State holds the active and archived campaign lists.
// Transitions return a new State and leave the receiver untouched.
type State struct {
	Active   []models.Campaign
	Archived []models.Campaign
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	return State{
		Active:   cloneList(s.Active),
		Archived: cloneList(s.Archived),
	}
}

func cloneList(list []models.Campaign) []models.Campaign {
	if list == nil {
		return nil
	}
	out := make([]models.Campaign, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}

func indexOf(list []models.Campaign, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new active campaign. ID and timestamps are assigned here.
func (s State) Add(c models.Campaign, now time.Time) (State, models.Campaign, error) {
	c = normalize(c)
	if err := validateCampaign(c); err != nil {
		return s, models.Campaign{}, err
	}

	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.InsightNotes = nil
	c.ArchivedAt = nil

	next := s.Clone()
	next.Active = append(next.Active, c)
	return next, c.Clone(), nil
}

// Edit replaces the active campaign with the given ID, keeping its ID and creation time
func (s State) Edit(id string, c models.Campaign, now time.Time) (State, models.Campaign, error) {
	idx := indexOf(s.Active, id)
	if idx < 0 {
		return s, models.Campaign{}, notFound(id)
	}

	c = normalize(c)
	if err := validateCampaign(c); err != nil {
		return s, models.Campaign{}, err
	}

	prev := s.Active[idx]
	c.ID = prev.ID
	c.CreatedAt = prev.CreatedAt
	c.UpdatedAt = now
	c.InsightNotes = nil
	c.ArchivedAt = nil

	next := s.Clone()
	next.Active[idx] = c
	return next, c.Clone(), nil
}

// Archive moves an active campaign to the end of the archive with no insight notes
func (s State) Archive(id string, now time.Time) (State, models.Campaign, error) {
	idx := indexOf(s.Active, id)
	if idx < 0 {
		return s, models.Campaign{}, notFound(id)
	}

	next := s.Clone()
	c := next.Active[idx]
	next.Active = append(next.Active[:idx], next.Active[idx+1:]...)

	at := now
	c.ArchivedAt = &at
	c.UpdatedAt = now
	c.InsightNotes = []models.InsightNote{}
	next.Archived = append(next.Archived, c)
	return next, c.Clone(), nil
}

// AddInsightNote appends a note to an archived campaign
func (s State) AddInsightNote(id, content string, now time.Time) (State, models.Campaign, error) {
	idx := indexOf(s.Archived, id)
	if idx < 0 {
		return s, models.Campaign{}, notFound(id)
	}
	if strings.TrimSpace(content) == "" {
		return s, models.Campaign{}, ErrEmptyNote
	}

	next := s.Clone()
	c := &next.Archived[idx]
	c.InsightNotes = append(c.InsightNotes, models.InsightNote{Content: content, CreatedAt: now})
	return next, c.Clone(), nil
}

// DeleteInsightNote removes the note at noteIndex from an archived campaign
func (s State) DeleteInsightNote(id string, noteIndex int) (State, models.Campaign, error) {
	idx := indexOf(s.Archived, id)
	if idx < 0 {
		return s, models.Campaign{}, notFound(id)
	}
	if noteIndex < 0 || noteIndex >= len(s.Archived[idx].InsightNotes) {
		return s, models.Campaign{}, ErrNoteNotFound
	}

	next := s.Clone()
	c := &next.Archived[idx]
	c.InsightNotes = append(c.InsightNotes[:noteIndex], c.InsightNotes[noteIndex+1:]...)
	return next, c.Clone(), nil
}

// Get returns the campaign with the given ID from either list
func (s State) Get(id string) (models.Campaign, bool) {
	if idx := indexOf(s.Active, id); idx >= 0 {
		return s.Active[idx].Clone(), true
	}
	if idx := indexOf(s.Archived, id); idx >= 0 {
		return s.Archived[idx].Clone(), true
	}
	return models.Campaign{}, false
}

// normalize trims the name and drops duplicate or unknown platforms.
// Notes are kept as typed.
func normalize(c models.Campaign) models.Campaign {
	c = c.Clone()
	c.Name = strings.TrimSpace(c.Name)

	var platforms []models.Platform
	for _, p := range c.Platforms {
		if _, err := models.ParsePlatform(string(p)); err != nil {
			continue
		}
		dup := false
		for _, seen := range platforms {
			if seen == p {
				dup = true
				break
			}
		}
		if !dup {
			platforms = append(platforms, p)
		}
	}
	c.Platforms = platforms
	return c
}
