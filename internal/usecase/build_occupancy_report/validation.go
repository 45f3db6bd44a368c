package build_occupancy_report

import (
	"fmt"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Window.StartDate.IsZero() || req.Window.EndDate.IsZero() {
		return fmt.Errorf("%w: reporting window is required", ErrInvalidInput)
	}

	if req.Window.StartDate.After(req.Window.EndDate) {
		return fmt.Errorf("%w: reporting window start is after end", ErrInvalidInput)
	}

	if req.Window.DurationDays() > domain.MaxReportingWindowDays {
		return fmt.Errorf("%w: reporting window exceeds %d days", ErrInvalidInput, domain.MaxReportingWindowDays)
	}

	for _, bedspace := range req.Bedspaces {
		if bedspace.OnlineUntil != nil && bedspace.OnlineFrom.After(*bedspace.OnlineUntil) {
			return fmt.Errorf("%w: bedspace %s online_from is after online_until", ErrInvalidInput, bedspace.ID)
		}
	}

	return nil
}

// validateRecords проверяет инварианты загруженных записей.
// Нарушение - precondition failure: отчет не строится, данные не нормализуются
func validateRecords(bookings []*domain.Booking, voids []*domain.Void) error {
	for _, booking := range bookings {
		if booking.ArrivalDate.After(booking.DepartureDate) {
			return fmt.Errorf("%w: booking %s arrival is after departure", ErrInvalidInput, booking.ID)
		}
		if booking.Turnaround != nil && booking.Turnaround.WorkingDayCount < 0 {
			return fmt.Errorf("%w: booking %s has negative turnaround working day count", ErrInvalidInput, booking.ID)
		}
	}

	for _, v := range voids {
		if v.StartDate.After(v.EndDate) {
			return fmt.Errorf("%w: void %s start is after end", ErrInvalidInput, v.ID)
		}
	}

	return nil
}
