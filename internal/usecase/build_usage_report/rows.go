package build_usage_report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/pkg/ptr"
)

// buildBedspaceRows строит строки отчета для одного койко-места.
// Порядок: строки бронирований в хронологическом порядке заезда, строка
// turnaround'а сразу за строкой своего бронирования, затем void-строки
// по обрезанной дате начала. Отмененные записи не попадают в отчет
func buildBedspaceRows(
	ctx context.Context,
	bedspace *domain.Bedspace,
	window domain.ReportingWindow,
	bookings []*domain.Booking,
	voids []*domain.Void,
	calendar CalendarService,
	resolver StatusResolver,
) ([]Row, error) {
	rows := make([]Row, 0, len(bookings)+len(voids))

	// Репозиторий не обязан возвращать записи отсортированными
	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalDate.Before(sorted[j].ArrivalDate)
	})

	for _, booking := range sorted {
		status := resolver.Classify(booking)
		if status == domain.StatusCancelled {
			continue
		}

		if clipped, ok := window.Clip(booking.ArrivalDate, booking.DepartureDate); ok {
			rows = append(rows, Row{
				BedspaceRef:  bedspace.Reference,
				PropertyRef:  bedspace.PropertyName,
				Type:         RowTypeBooking,
				StartDate:    clipped.StartDate,
				EndDate:      clipped.EndDate,
				DurationDays: clipped.DurationDays(),
				CRN:          booking.CRN,
				Status:       ptr.Ptr(status),
			})
		}

		// Turnaround попадает в отчет независимо от того, попало ли в окно
		// само бронирование
		if booking.Turnaround != nil {
			turnaroundRow, ok, err := buildTurnaroundRow(ctx, bedspace, window, booking, calendar)
			if err != nil {
				return nil, err
			}
			if ok {
				rows = append(rows, turnaroundRow)
			}
		}
	}

	voidRows := make([]Row, 0, len(voids))
	for _, v := range voids {
		if v.IsCancelled() {
			continue
		}

		clipped, ok := window.Clip(v.StartDate, v.EndDate)
		if !ok {
			continue
		}

		voidRows = append(voidRows, Row{
			BedspaceRef:  bedspace.Reference,
			PropertyRef:  bedspace.PropertyName,
			Type:         RowTypeVoid,
			StartDate:    clipped.StartDate,
			EndDate:      clipped.EndDate,
			DurationDays: clipped.DurationDays(),
			VoidCategory: ptr.Ptr(v.Reason.Name),
			VoidNotes:    v.Notes,
			CostCentre:   v.CostCentre,
		})
	}

	sort.SliceStable(voidRows, func(i, j int) bool {
		return voidRows[i].StartDate.Before(voidRows[j].StartDate)
	})

	return append(rows, voidRows...), nil
}

// buildTurnaroundRow выводит диапазон turnaround'а из даты выезда
// и обрезает его по окну. Turnaround нулевой длины строки не дает
func buildTurnaroundRow(
	ctx context.Context,
	bedspace *domain.Bedspace,
	window domain.ReportingWindow,
	booking *domain.Booking,
	calendar CalendarService,
) (Row, bool, error) {
	start, end, err := turnaroundRange(ctx, calendar, booking)
	if err != nil {
		return Row{}, false, err
	}
	if start.After(end) {
		return Row{}, false, nil
	}

	clipped, ok := window.Clip(start, end)
	if !ok {
		return Row{}, false, nil
	}

	return Row{
		BedspaceRef:  bedspace.Reference,
		PropertyRef:  bedspace.PropertyName,
		Type:         RowTypeTurnaround,
		StartDate:    clipped.StartDate,
		EndDate:      clipped.EndDate,
		DurationDays: clipped.DurationDays(),
	}, true, nil
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
