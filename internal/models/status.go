package models

import "time"

// Status is derived from the end date and never stored
type Status int

const (
	StatusLive Status = iota
	StatusEndingSoon
	StatusCompleted
)

// EndingSoonDays is the inclusive window before the end date that counts as ending soon
const EndingSoonDays = 7

func (s Status) String() string {
	switch s {
	case StatusLive:
		return "Live"
	case StatusEndingSoon:
		return "Ending Soon"
	case StatusCompleted:
		return "Completed"
	}
	return "Unknown"
}

// DaysUntil returns the number of calendar days from now's date to end's date,
// which is ceil((end - now) / 24h) with every day counted as 24 hours.
func DaysUntil(end, now time.Time) int {
	return int(calendarDay(end).Sub(calendarDay(now)).Hours() / 24)
}

// calendarDay is t's date at UTC midnight
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DeriveStatus classifies a campaign ending on end as seen at now
func DeriveStatus(end, now time.Time) Status {
	days := DaysUntil(end, now)
	switch {
	case days < 0:
		return StatusCompleted
	case days <= EndingSoonDays:
		return StatusEndingSoon
	default:
		return StatusLive
	}
}
