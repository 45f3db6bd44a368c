package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents one stay in a bedspace, from arrival to departure
// date inclusive. Lifecycle sub-events are recorded as timestamps;
// the reporting status is derived from them, see ResolveBookingStatus.
type Booking struct {
	ID         uuid.UUID
	BedspaceID uuid.UUID
	CRN        *string // case reference number of the person placed

	ArrivalDate   time.Time
	DepartureDate time.Time

	ConfirmedAt *time.Time
	ArrivedAt   *time.Time
	DepartedAt  *time.Time
	CancelledAt *time.Time

	CancellationReason *string

	// Turnaround is attached once a departure is recorded; nil otherwise.
	Turnaround *Turnaround

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.CancelledAt != nil
}

// HasArrival returns true if an arrival has been recorded.
func (b *Booking) HasArrival() bool {
	return b.ArrivedAt != nil
}

// CanBeConfirmed returns true if the booking can still be confirmed.
func (b *Booking) CanBeConfirmed() bool {
	return !b.IsCancelled() && b.ConfirmedAt == nil && b.ArrivedAt == nil
}

// CanRecordArrival returns true if an arrival can be recorded.
func (b *Booking) CanRecordArrival() bool {
	return !b.IsCancelled() && b.ArrivedAt == nil
}

// CanRecordDeparture returns true if a departure can be recorded.
func (b *Booking) CanRecordDeparture() bool {
	return !b.IsCancelled() && b.ArrivedAt != nil && b.DepartedAt == nil
}

// CanBeCancelled returns true if the booking can be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return !b.IsCancelled() && b.DepartedAt == nil
}

// Turnaround is the mandated unavailability period after a booking's
// departure, measured in working days. Its date range is derived from
// the departure date by the calendar service, never stored.
type Turnaround struct {
	ID              uuid.UUID
	BookingID       uuid.UUID
	WorkingDayCount int
	CreatedAt       time.Time
}
