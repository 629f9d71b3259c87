package models

import "time"

// DateLayout is the calendar date format used for campaign start and end dates
const DateLayout = "2006-01-02"

// InsightNote is a free-text annotation on an archived campaign
type InsightNote struct {
	Content   string
	CreatedAt time.Time
}

// Campaign represents a single marketing campaign
type Campaign struct {
	ID           string
	Name         string    `validate:"required"`
	StartDate    time.Time `validate:"required"`
	EndDate      time.Time `validate:"required"`
	Platforms    []Platform
	Notes        string
	InsightNotes []InsightNote // only populated on archived campaigns
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ArchivedAt   *time.Time // nil while active
}

// Archived reports whether the campaign has been moved to the archive
func (c Campaign) Archived() bool {
	return c.ArchivedAt != nil
}

// HasPlatform reports whether p is one of the campaign's platforms
func (c Campaign) HasPlatform(p Platform) bool {
	for _, existing := range c.Platforms {
		if existing == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can modify slices without aliasing
func (c Campaign) Clone() Campaign {
	out := c
	if c.Platforms != nil {
		out.Platforms = make([]Platform, len(c.Platforms))
		copy(out.Platforms, c.Platforms)
	}
	// an empty, non-nil note list marks an archived campaign without notes
	if c.InsightNotes != nil {
		out.InsightNotes = make([]InsightNote, len(c.InsightNotes))
		copy(out.InsightNotes, c.InsightNotes)
	}
	if c.ArchivedAt != nil {
		at := *c.ArchivedAt
		out.ArchivedAt = &at
	}
	return out
}
