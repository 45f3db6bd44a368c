package domain

import (
	"time"

	"github.com/google/uuid"
)

// VoidReason is the recorded category of a maintenance void.
type VoidReason struct {
	ID   uuid.UUID
	Name string
}

// Void is a planned maintenance/unavailability period for a bedspace,
// independent of bookings.
type Void struct {
	ID         uuid.UUID
	BedspaceID uuid.UUID

	StartDate time.Time
	EndDate   time.Time

	Reason     VoidReason
	Notes      *string
	CostCentre *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the void has been cancelled.
func (v *Void) IsCancelled() bool {
	return v.CancelledAt != nil
}
