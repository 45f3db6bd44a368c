package domain

// BookingStatus is the reporting classification of a booking,
// derived once from its lifecycle sub-events.
type BookingStatus string

const (
	StatusProvisional BookingStatus = "provisional"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusArrived     BookingStatus = "arrived"
	StatusDeparted    BookingStatus = "departed"
	StatusCancelled   BookingStatus = "cancelled"
)

// ResolveBookingStatus classifies a booking from the presence of its
// sub-events. Cancellation wins over everything; otherwise the most
// advanced recorded event determines the status.
func ResolveBookingStatus(b *Booking) BookingStatus {
	switch {
	case b.CancelledAt != nil:
		return StatusCancelled
	case b.DepartedAt != nil:
		return StatusDeparted
	case b.ArrivedAt != nil:
		return StatusArrived
	case b.ConfirmedAt != nil:
		return StatusConfirmed
	default:
		return StatusProvisional
	}
}
