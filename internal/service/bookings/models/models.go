package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	BedspaceID    uuid.UUID `json:"bedspaceId"`
	CRN           *string   `json:"crn,omitempty"`
	ArrivalDate   time.Time `json:"arrivalDate"`
	DepartureDate time.Time `json:"departureDate"`
}

// RecordDepartureRequest запрос на фиксацию выезда.
// TurnaroundWorkingDays задает длительность turnaround'а после выезда,
// nil - без turnaround'а
type RecordDepartureRequest struct {
	DepartedAt            time.Time `json:"departedAt"`
	TurnaroundWorkingDays *int      `json:"turnaroundWorkingDays,omitempty"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BedspaceID    uuid.UUID `json:"bedspaceId"`
	CRN           *string   `json:"crn,omitempty"`
	ArrivalDate   string    `json:"arrivalDate"`   // "2023-04-01"
	DepartureDate string    `json:"departureDate"` // "2023-04-30"
	Status        string    `json:"status"`

	ConfirmedAt *string `json:"confirmedAt,omitempty"` // ISO 8601 format
	ArrivedAt   *string `json:"arrivedAt,omitempty"`
	DepartedAt  *string `json:"departedAt,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`

	TurnaroundWorkingDays *int `json:"turnaroundWorkingDays,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		BedspaceID:         b.BedspaceID,
		CRN:                b.CRN,
		ArrivalDate:        b.ArrivalDate.Format(domain.DateFormat),
		DepartureDate:      b.DepartureDate.Format(domain.DateFormat),
		Status:             string(domain.ResolveBookingStatus(b)),
		ConfirmedAt:        formatTimestamp(b.ConfirmedAt),
		ArrivedAt:          formatTimestamp(b.ArrivedAt),
		DepartedAt:         formatTimestamp(b.DepartedAt),
		CancelledAt:        formatTimestamp(b.CancelledAt),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.Turnaround != nil {
		days := b.Turnaround.WorkingDayCount
		resp.TurnaroundWorkingDays = &days
	}

	return resp
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
