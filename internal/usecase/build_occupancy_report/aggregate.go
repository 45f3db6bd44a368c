package build_occupancy_report

import (
	"context"
	"fmt"
	"time"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// aggregateBedspace считает агрегаты занятости одного койко-места за окно
func aggregateBedspace(
	ctx context.Context,
	bedspace *domain.Bedspace,
	window domain.ReportingWindow,
	bookings []*domain.Booking,
	voids []*domain.Void,
	calendar CalendarService,
	resolver StatusResolver,
) (Row, error) {
	row := Row{
		BedspaceRef:       bedspace.Reference,
		PropertyRef:       bedspace.PropertyName,
		BedspaceStartDate: domain.DateOf(bedspace.OnlineFrom),
		OnlineDays:        bedspace.OnlineDaysWithin(window),
	}
	if bedspace.OnlineUntil != nil {
		endDate := domain.DateOf(*bedspace.OnlineUntil)
		row.BedspaceEndDate = &endDate
	}

	for _, booking := range bookings {
		status := resolver.Classify(booking)
		if status == domain.StatusCancelled {
			continue
		}

		if clipped, ok := window.Clip(booking.ArrivalDate, booking.DepartureDate); ok {
			days := clipped.DurationDays()

			// TotalBookedDays учитывает все неотмененные бронирования;
			// в нем нет дней turnaround'ов и void'ов
			row.TotalBookedDays += days

			switch status {
			case domain.StatusArrived, domain.StatusDeparted:
				row.BookedDaysActiveAndClosed += days
			case domain.StatusConfirmed:
				row.ConfirmedDays += days
			}
		}

		if booking.Turnaround != nil {
			if err := addTurnaroundDays(ctx, &row, window, booking, calendar); err != nil {
				return Row{}, err
			}
		}
	}

	for _, v := range voids {
		if v.IsCancelled() {
			continue
		}
		if clipped, ok := window.Clip(v.StartDate, v.EndDate); ok {
			row.VoidDays += clipped.DurationDays()
		}
	}

	// Окно может целиком лежать вне жизненного цикла койко-места,
	// тогда rate не определен - репортим 0
	if row.OnlineDays > 0 {
		row.OccupancyRate = float64(row.TotalBookedDays) / float64(row.OnlineDays)
	}

	return row, nil
}

// addTurnaroundDays обрезает выведенный диапазон turnaround'а по окну и
// добавляет к агрегатам рабочие (scheduled) и календарные (effective) дни
func addTurnaroundDays(
	ctx context.Context,
	row *Row,
	window domain.ReportingWindow,
	booking *domain.Booking,
	calendar CalendarService,
) error {
	start, end, err := turnaroundRange(ctx, calendar, booking)
	if err != nil {
		return err
	}
	if start.After(end) {
		return nil
	}

	clipped, ok := window.Clip(start, end)
	if !ok {
		return nil
	}

	// Рабочие дни считаются по уже обрезанному диапазону: учитываются
	// только рабочие дни внутри окна, а не весь turnaround
	workingDays, err := calendar.CountWorkingDays(ctx, clipped.StartDate, clipped.EndDate)
	if err != nil {
		return fmt.Errorf("%w: failed to count turnaround working days: %v", ErrInternal, err)
	}

	row.ScheduledTurnaroundDays += workingDays
	row.EffectiveTurnaroundDays += clipped.DurationDays()

	return nil
}

// turnaroundRange вычисляет диапазон turnaround'а:
// [выезд + 1 день, выезд + N рабочих дней]
func turnaroundRange(ctx context.Context, calendar CalendarService, booking *domain.Booking) (time.Time, time.Time, error) {
	departure := domain.DateOf(booking.DepartureDate)

	end, err := calendar.AddWorkingDays(ctx, departure, booking.Turnaround.WorkingDayCount)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: failed to derive turnaround range: %v", ErrInternal, err)
	}

	return departure.AddDate(0, 0, 1), end, nil
}
