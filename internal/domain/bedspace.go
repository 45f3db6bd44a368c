package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a premises that owns one or more bedspaces.
type Property struct {
	ID     uuid.UUID
	Name   string
	Region *string // probation region; nil when not recorded
}

// Bedspace is a single lettable unit within a property.
type Bedspace struct {
	ID           uuid.UUID
	Reference    string // room reference, e.g. "Room 2"
	PropertyID   uuid.UUID
	PropertyName string
	Region       *string

	// OnlineFrom is the activation date; OnlineUntil is nil while active.
	OnlineFrom  time.Time
	OnlineUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnline returns true if the bedspace is active on the given date.
func (b *Bedspace) IsOnline(date time.Time) bool {
	date = DateOf(date)
	if date.Before(DateOf(b.OnlineFrom)) {
		return false
	}
	return b.OnlineUntil == nil || !date.After(DateOf(*b.OnlineUntil))
}

// MatchesRegion reports whether the bedspace passes a region filter.
// A bedspace is excluded only when its property's region is recorded
// and differs from the filter.
func (b *Bedspace) MatchesRegion(region *string) bool {
	if region == nil {
		return true
	}
	return b.Region == nil || *b.Region == *region
}

// OnlineDaysWithin returns the number of days within the window on which
// the bedspace was online. Zero when the lifecycle and the window are
// disjoint.
func (b *Bedspace) OnlineDaysWithin(window ReportingWindow) int {
	start := DateOf(b.OnlineFrom)
	if start.Before(window.StartDate) {
		start = window.StartDate
	}

	end := window.EndDate
	if b.OnlineUntil != nil && DateOf(*b.OnlineUntil).Before(end) {
		end = DateOf(*b.OnlineUntil)
	}

	if start.After(end) {
		return 0
	}
	return DaysBetween(start, end) + 1
}
