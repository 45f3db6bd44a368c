package build_occupancy_report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// weekdayCalendar календарь без праздников: рабочие дни - будни
type weekdayCalendar struct{}

func (weekdayCalendar) AddWorkingDays(_ context.Context, d time.Time, count int) (time.Time, error) {
	result := domain.DateOf(d)
	for added := 0; added < count; {
		result = result.AddDate(0, 0, 1)
		if result.Weekday() != time.Saturday && result.Weekday() != time.Sunday {
			added++
		}
	}
	return result, nil
}

func (weekdayCalendar) CountWorkingDays(_ context.Context, start, end time.Time) (int, error) {
	count := 0
	for d := domain.DateOf(start); !d.After(domain.DateOf(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return count, nil
}

type stubBookingRepo struct {
	byBedspace map[uuid.UUID][]*domain.Booking
	err        error
}

func (s *stubBookingRepo) FindOverlapping(_ context.Context, bedspaceID uuid.UUID, _ domain.ReportingWindow) ([]*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byBedspace[bedspaceID], nil
}

type stubVoidRepo struct {
	byBedspace map[uuid.UUID][]*domain.Void
	err        error
}

func (s *stubVoidRepo) FindOverlapping(_ context.Context, bedspaceID uuid.UUID, _ domain.ReportingWindow) ([]*domain.Void, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byBedspace[bedspaceID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBedspace(reference, property string, region *string) *domain.Bedspace {
	return &domain.Bedspace{
		ID:           uuid.New(),
		Reference:    reference,
		PropertyID:   uuid.New(),
		PropertyName: property,
		Region:       region,
		OnlineFrom:   date(2022, 1, 1),
	}
}

func aprilWindow() domain.ReportingWindow {
	return domain.ReportingWindow{StartDate: date(2023, 4, 1), EndDate: date(2023, 4, 30)}
}

func executeSingle(t *testing.T, bedspace *domain.Bedspace, window domain.ReportingWindow, bookings []*domain.Booking, voids []*domain.Void) Row {
	t.Helper()

	uc := NewUseCase(
		&stubBookingRepo{byBedspace: map[uuid.UUID][]*domain.Booking{bedspace.ID: bookings}},
		&stubVoidRepo{byBedspace: map[uuid.UUID][]*domain.Void{bedspace.ID: voids}},
		weekdayCalendar{}, 0, nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Window:    window,
		Bedspaces: []*domain.Bedspace{bedspace},
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	return resp.Rows[0]
}

func TestExecute_BookedDaysClippedAtBothWindowEdges(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)
	ts := ptr.Ptr(date(2023, 3, 28))

	// Первое бронирование выступает за начало окна, второе - за конец.
	// В окно попадают 01.04-04.04 (4 дня) и 28.04-30.04 (3 дня)
	bookings := []*domain.Booking{
		{
			ID:            uuid.New(),
			BedspaceID:    bedspace.ID,
			ArrivalDate:   date(2023, 3, 28),
			DepartureDate: date(2023, 4, 4),
			ArrivedAt:     ts,
		},
		{
			ID:            uuid.New(),
			BedspaceID:    bedspace.ID,
			ArrivalDate:   date(2023, 4, 28),
			DepartureDate: date(2023, 5, 4),
			ArrivedAt:     ts,
		},
	}

	row := executeSingle(t, bedspace, aprilWindow(), bookings, nil)

	assert.Equal(t, 7, row.BookedDaysActiveAndClosed)
	assert.Equal(t, 7, row.TotalBookedDays)
	assert.Equal(t, 0, row.ConfirmedDays)
	assert.Equal(t, 30, row.OnlineDays)
	assert.InDelta(t, 7.0/30.0, row.OccupancyRate, 1e-9)
}

func TestExecute_ConfirmedAndProvisionalSplit(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)

	bookings := []*domain.Booking{
		{
			ID:            uuid.New(),
			BedspaceID:    bedspace.ID,
			ArrivalDate:   date(2023, 4, 3),
			DepartureDate: date(2023, 4, 7),
			ConfirmedAt:   ptr.Ptr(date(2023, 3, 20)),
		},
		{
			// Provisional учитывается только в TotalBookedDays
			ID:            uuid.New(),
			BedspaceID:    bedspace.ID,
			ArrivalDate:   date(2023, 4, 10),
			DepartureDate: date(2023, 4, 12),
		},
	}

	row := executeSingle(t, bedspace, aprilWindow(), bookings, nil)

	assert.Equal(t, 5, row.ConfirmedDays)
	assert.Equal(t, 0, row.BookedDaysActiveAndClosed)
	assert.Equal(t, 8, row.TotalBookedDays)
}

func TestExecute_TurnaroundDays(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)
	ts := ptr.Ptr(date(2023, 4, 14))

	booking := &domain.Booking{
		ID:            uuid.New(),
		BedspaceID:    bedspace.ID,
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14), // пятница
		ArrivedAt:     ts,
		DepartedAt:    ts,
		Turnaround:    &domain.Turnaround{WorkingDayCount: 2},
	}

	row := executeSingle(t, bedspace, aprilWindow(), []*domain.Booking{booking}, nil)

	// Диапазон turnaround'а: 15.04 - 18.04 (2 рабочих дня от пятницы).
	// Scheduled - рабочие дни диапазона (пн 17, вт 18), effective - календарные
	assert.Equal(t, 2, row.ScheduledTurnaroundDays)
	assert.Equal(t, 4, row.EffectiveTurnaroundDays)
	assert.Equal(t, 12, row.TotalBookedDays, "turnaround days are not booked days")
}

func TestExecute_TurnaroundClippedAtWindowEnd(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)
	ts := ptr.Ptr(date(2023, 4, 27))

	booking := &domain.Booking{
		ID:            uuid.New(),
		BedspaceID:    bedspace.ID,
		ArrivalDate:   date(2023, 4, 20),
		DepartureDate: date(2023, 4, 27), // четверг
		ArrivedAt:     ts,
		DepartedAt:    ts,
		Turnaround:    &domain.Turnaround{WorkingDayCount: 5},
	}

	row := executeSingle(t, bedspace, aprilWindow(), []*domain.Booking{booking}, nil)

	// Полный диапазон 28.04 - 04.05 обрезается до 28.04 - 30.04:
	// один рабочий день (пятница 28) и три календарных
	assert.Equal(t, 1, row.ScheduledTurnaroundDays)
	assert.Equal(t, 3, row.EffectiveTurnaroundDays)
}

func TestExecute_VoidDays(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)

	voids := []*domain.Void{
		{
			ID:         uuid.New(),
			BedspaceID: bedspace.ID,
			StartDate:  date(2023, 4, 5),
			EndDate:    date(2023, 4, 7),
			Reason:     domain.VoidReason{Name: "Damage repair"},
		},
		{
			ID:          uuid.New(),
			BedspaceID:  bedspace.ID,
			StartDate:   date(2023, 4, 10),
			EndDate:     date(2023, 4, 20),
			Reason:      domain.VoidReason{Name: "Deep clean"},
			CancelledAt: ptr.Ptr(date(2023, 4, 9)),
		},
	}

	row := executeSingle(t, bedspace, aprilWindow(), nil, voids)

	assert.Equal(t, 3, row.VoidDays, "cancelled void contributes nothing")
	assert.Equal(t, 0, row.TotalBookedDays)
}

func TestExecute_CancelledBookingContributesNothing(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)

	booking := &domain.Booking{
		ID:            uuid.New(),
		BedspaceID:    bedspace.ID,
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
		ConfirmedAt:   ptr.Ptr(date(2023, 3, 20)),
		CancelledAt:   ptr.Ptr(date(2023, 3, 25)),
		Turnaround:    &domain.Turnaround{WorkingDayCount: 2},
	}

	row := executeSingle(t, bedspace, aprilWindow(), []*domain.Booking{booking}, nil)

	assert.Equal(t, 0, row.TotalBookedDays)
	assert.Equal(t, 0, row.ConfirmedDays)
	assert.Equal(t, 0, row.ScheduledTurnaroundDays)
	assert.Equal(t, 0, row.EffectiveTurnaroundDays)
	assert.Zero(t, row.OccupancyRate)
}

func TestExecute_OnlineDaysAndRateForPartialLifecycle(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)
	bedspace.OnlineFrom = date(2024, 2, 5)

	booking := &domain.Booking{
		ID:            uuid.New(),
		BedspaceID:    bedspace.ID,
		ArrivalDate:   date(2024, 2, 10),
		DepartureDate: date(2024, 2, 22),
		ArrivedAt:     ptr.Ptr(date(2024, 2, 10)),
	}

	february := domain.ReportingWindow{StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 29)}
	row := executeSingle(t, bedspace, february, []*domain.Booking{booking}, nil)

	assert.Equal(t, 25, row.OnlineDays, "online from 5 Feb in a 29-day month")
	assert.Equal(t, 13, row.TotalBookedDays)
	assert.InDelta(t, 13.0/25.0, row.OccupancyRate, 1e-9)
	assert.Equal(t, date(2024, 2, 5), row.BedspaceStartDate)
	assert.Nil(t, row.BedspaceEndDate)
}

func TestExecute_BedspaceOfflineForWholeWindow(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)
	bedspace.OnlineFrom = date(2023, 6, 1)

	booking := &domain.Booking{
		ID:            uuid.New(),
		BedspaceID:    bedspace.ID,
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 7),
	}

	row := executeSingle(t, bedspace, aprilWindow(), []*domain.Booking{booking}, nil)

	assert.Equal(t, 0, row.OnlineDays)
	assert.Equal(t, 5, row.TotalBookedDays)
	assert.Zero(t, row.OccupancyRate, "rate is undefined without online days, reported as 0")
}

func TestExecute_BedspaceWithoutActivityYieldsZeroRow(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)

	row := executeSingle(t, bedspace, aprilWindow(), nil, nil)

	assert.Equal(t, "Room 1", row.BedspaceRef)
	assert.Equal(t, 30, row.OnlineDays)
	assert.Equal(t, 0, row.TotalBookedDays)
	assert.Equal(t, 0, row.VoidDays)
	assert.Zero(t, row.OccupancyRate)
}

func TestExecute_RegionFilterAndInputOrder(t *testing.T) {
	north := newBedspace("Room 1", "Acacia House", ptr.Ptr("North East"))
	south := newBedspace("Room 2", "Birch Lodge", ptr.Ptr("South West"))
	unset := newBedspace("Room 3", "Cedar Court", nil)

	uc := NewUseCase(&stubBookingRepo{}, &stubVoidRepo{}, weekdayCalendar{}, 2, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Window:    aprilWindow(),
		Region:    ptr.Ptr("North East"),
		Bedspaces: []*domain.Bedspace{south, north, unset},
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Room 1", resp.Rows[0].BedspaceRef)
	assert.Equal(t, "Room 3", resp.Rows[1].BedspaceRef)
}

func TestExecute_InvalidWindowRejected(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubVoidRepo{}, weekdayCalendar{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Window: domain.ReportingWindow{StartDate: date(2023, 4, 30), EndDate: date(2023, 4, 1)},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorAbortsReport(t *testing.T) {
	bedspace := newBedspace("Room 1", "Acacia House", nil)
	repoErr := errors.New("connection refused")

	uc := NewUseCase(&stubBookingRepo{}, &stubVoidRepo{err: repoErr}, weekdayCalendar{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Window:    aprilWindow(),
		Bedspaces: []*domain.Bedspace{bedspace},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
