package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidWindow is returned when a reporting window has start after end
	ErrInvalidWindow = errors.New("reporting window start date is after end date")
)

// ReportingWindow is the inclusive date range a report is computed over.
// Both bounds are dates (midnight UTC); the window is never empty.
type ReportingWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewReportingWindow builds a validated reporting window.
func NewReportingWindow(start, end time.Time) (ReportingWindow, error) {
	start = DateOf(start)
	end = DateOf(end)
	if start.After(end) {
		return ReportingWindow{}, fmt.Errorf("%w: %s > %s",
			ErrInvalidWindow, start.Format(DateFormat), end.Format(DateFormat))
	}
	return ReportingWindow{StartDate: start, EndDate: end}, nil
}

// WindowForMonth returns the reporting window covering a whole calendar month.
func WindowForMonth(year int, month time.Month) ReportingWindow {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return ReportingWindow{StartDate: start, EndDate: start.AddDate(0, 1, -1)}
}

// DurationDays returns the inclusive day count of the window.
func (w ReportingWindow) DurationDays() int {
	return DaysBetween(w.StartDate, w.EndDate) + 1
}

// Clip intersects [start, end] with the window.
// Returns the clipped range and true, or a zero range and false when the
// interval does not overlap the window at all.
func (w ReportingWindow) Clip(start, end time.Time) (ClippedRange, bool) {
	start = DateOf(start)
	end = DateOf(end)

	if start.Before(w.StartDate) {
		start = w.StartDate
	}
	if end.After(w.EndDate) {
		end = w.EndDate
	}
	if start.After(end) {
		return ClippedRange{}, false
	}
	return ClippedRange{StartDate: start, EndDate: end}, true
}

// ClippedRange is an interval already bounded by a reporting window.
type ClippedRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// DurationDays returns the inclusive day count of the clipped range.
func (r ClippedRange) DurationDays() int {
	return DaysBetween(r.StartDate, r.EndDate) + 1
}

// DateOf truncates a timestamp to its date (midnight UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
