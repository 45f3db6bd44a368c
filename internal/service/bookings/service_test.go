package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdema/TA-ReportingService/internal/domain"
	bedspaceRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/bedspace"
	bookingRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/booking"
	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
	"github.com/avdema/TA-ReportingService/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type stubBookingRepo struct {
	bookings    map[uuid.UUID]*domain.Booking
	overlapping []*domain.Booking

	created     *domain.Booking
	turnarounds []*domain.Turnaround
	confirmed   []uuid.UUID
	arrivals    []uuid.UUID
	departures  []uuid.UUID
	cancelled   []uuid.UUID
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.created = booking
	return booking, nil
}

func (s *stubBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (s *stubBookingRepo) FindOverlapping(_ context.Context, _ uuid.UUID, _ domain.ReportingWindow) ([]*domain.Booking, error) {
	return s.overlapping, nil
}

func (s *stubBookingRepo) SetConfirmed(_ context.Context, id uuid.UUID, _ time.Time) error {
	s.confirmed = append(s.confirmed, id)
	return nil
}

func (s *stubBookingRepo) SetArrival(_ context.Context, id uuid.UUID, _ time.Time) error {
	s.arrivals = append(s.arrivals, id)
	return nil
}

func (s *stubBookingRepo) SetDeparture(_ context.Context, id uuid.UUID, _ time.Time) error {
	s.departures = append(s.departures, id)
	return nil
}

func (s *stubBookingRepo) Cancel(_ context.Context, id uuid.UUID, _ time.Time, _ string) error {
	s.cancelled = append(s.cancelled, id)
	return nil
}

func (s *stubBookingRepo) CreateTurnaround(_ context.Context, turnaround *domain.Turnaround) error {
	s.turnarounds = append(s.turnarounds, turnaround)
	return nil
}

type stubVoidRepo struct {
	overlapping []*domain.Void
}

func (s *stubVoidRepo) FindOverlapping(_ context.Context, _ uuid.UUID, _ domain.ReportingWindow) ([]*domain.Void, error) {
	return s.overlapping, nil
}

type stubBedspaceRepo struct {
	bedspaces map[uuid.UUID]*domain.Bedspace
}

func (s *stubBedspaceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Bedspace, error) {
	bedspace, ok := s.bedspaces[id]
	if !ok {
		return nil, bedspaceRepo.ErrBedspaceNotFound
	}
	return bedspace, nil
}

// passthroughTxManager выполняет функцию без транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(bookings *stubBookingRepo, voids *stubVoidRepo, bedspaces *stubBedspaceRepo) *Service {
	if voids == nil {
		voids = &stubVoidRepo{}
	}
	return NewService(bookings, voids, bedspaces, passthroughTxManager{}, nopLogger{})
}

func knownBedspace() (*stubBedspaceRepo, uuid.UUID) {
	id := uuid.New()
	return &stubBedspaceRepo{bedspaces: map[uuid.UUID]*domain.Bedspace{
		id: {ID: id, Reference: "Room 1", PropertyName: "Acacia House"},
	}}, id
}

func TestCreate_Success(t *testing.T) {
	bedspaces, bedspaceID := knownBedspace()
	repo := &stubBookingRepo{}
	svc := newService(repo, nil, bedspaces)

	resp, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		BedspaceID:    bedspaceID,
		CRN:           ptr.Ptr("X320741"),
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
	})
	require.NoError(t, err)

	assert.Equal(t, "provisional", resp.Status)
	assert.Equal(t, "2023-04-03", resp.ArrivalDate)
	assert.Equal(t, "2023-04-14", resp.DepartureDate)
	require.NotNil(t, repo.created)
	assert.Equal(t, bedspaceID, repo.created.BedspaceID)
}

func TestCreate_UnknownBedspace(t *testing.T) {
	svc := newService(&stubBookingRepo{}, nil, &stubBedspaceRepo{})

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		BedspaceID:    uuid.New(),
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
	})
	assert.ErrorIs(t, err, ErrBedspaceNotFound)
}

func TestCreate_InvertedInterval(t *testing.T) {
	bedspaces, bedspaceID := knownBedspace()
	svc := newService(&stubBookingRepo{}, nil, bedspaces)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		BedspaceID:    bedspaceID,
		ArrivalDate:   date(2023, 4, 14),
		DepartureDate: date(2023, 4, 3),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_ConflictWithExistingBooking(t *testing.T) {
	bedspaces, bedspaceID := knownBedspace()
	repo := &stubBookingRepo{
		overlapping: []*domain.Booking{{
			ID:            uuid.New(),
			BedspaceID:    bedspaceID,
			ArrivalDate:   date(2023, 4, 10),
			DepartureDate: date(2023, 4, 20),
		}},
	}
	svc := newService(repo, nil, bedspaces)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		BedspaceID:    bedspaceID,
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
	})
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Nil(t, repo.created)
}

func TestCreate_CancelledBookingDoesNotConflict(t *testing.T) {
	bedspaces, bedspaceID := knownBedspace()
	repo := &stubBookingRepo{
		overlapping: []*domain.Booking{{
			ID:            uuid.New(),
			BedspaceID:    bedspaceID,
			ArrivalDate:   date(2023, 4, 10),
			DepartureDate: date(2023, 4, 20),
			CancelledAt:   ptr.Ptr(date(2023, 4, 1)),
		}},
	}
	svc := newService(repo, nil, bedspaces)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		BedspaceID:    bedspaceID,
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
	})
	assert.NoError(t, err)
}

func TestCreate_ConflictWithVoid(t *testing.T) {
	bedspaces, bedspaceID := knownBedspace()
	voids := &stubVoidRepo{
		overlapping: []*domain.Void{{
			ID:         uuid.New(),
			BedspaceID: bedspaceID,
			StartDate:  date(2023, 4, 5),
			EndDate:    date(2023, 4, 7),
			Reason:     domain.VoidReason{Name: "Damage repair"},
		}},
	}
	svc := newService(&stubBookingRepo{}, voids, bedspaces)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		BedspaceID:    bedspaceID,
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
	})
	assert.ErrorIs(t, err, ErrBookingConflict)
}

func TestConfirm_LifecycleGuards(t *testing.T) {
	provisional := &domain.Booking{ID: uuid.New(), ArrivalDate: date(2023, 4, 3), DepartureDate: date(2023, 4, 14)}
	arrived := &domain.Booking{
		ID:            uuid.New(),
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
		ArrivedAt:     ptr.Ptr(date(2023, 4, 3)),
	}

	repo := &stubBookingRepo{bookings: map[uuid.UUID]*domain.Booking{
		provisional.ID: provisional,
		arrived.ID:     arrived,
	}}
	svc := newService(repo, nil, nil)

	resp, err := svc.Confirm(context.Background(), provisional.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []uuid.UUID{provisional.ID}, repo.confirmed)

	_, err = svc.Confirm(context.Background(), arrived.ID)
	assert.ErrorIs(t, err, ErrCannotConfirm)

	_, err = svc.Confirm(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRecordArrival(t *testing.T) {
	booking := &domain.Booking{ID: uuid.New(), ArrivalDate: date(2023, 4, 3), DepartureDate: date(2023, 4, 14)}
	repo := &stubBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := newService(repo, nil, nil)

	resp, err := svc.RecordArrival(context.Background(), booking.ID, date(2023, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, "arrived", resp.Status)

	// Повторный заезд не фиксируется
	_, err = svc.RecordArrival(context.Background(), booking.ID, date(2023, 4, 4))
	assert.ErrorIs(t, err, ErrCannotRecordArrival)
}

func TestRecordDeparture_WithTurnaround(t *testing.T) {
	booking := &domain.Booking{
		ID:            uuid.New(),
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
		ArrivedAt:     ptr.Ptr(date(2023, 4, 3)),
	}
	repo := &stubBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := newService(repo, nil, nil)

	resp, err := svc.RecordDeparture(context.Background(), booking.ID, &models.RecordDepartureRequest{
		DepartedAt:            date(2023, 4, 14),
		TurnaroundWorkingDays: ptr.Ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, "departed", resp.Status)
	require.NotNil(t, resp.TurnaroundWorkingDays)
	assert.Equal(t, 2, *resp.TurnaroundWorkingDays)
	require.Len(t, repo.turnarounds, 1)
	assert.Equal(t, booking.ID, repo.turnarounds[0].BookingID)
}

func TestRecordDeparture_RequiresArrival(t *testing.T) {
	booking := &domain.Booking{ID: uuid.New(), ArrivalDate: date(2023, 4, 3), DepartureDate: date(2023, 4, 14)}
	repo := &stubBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := newService(repo, nil, nil)

	_, err := svc.RecordDeparture(context.Background(), booking.ID, &models.RecordDepartureRequest{
		DepartedAt: date(2023, 4, 14),
	})
	assert.ErrorIs(t, err, ErrCannotRecordDeparture)
}

func TestRecordDeparture_TurnaroundBounds(t *testing.T) {
	booking := &domain.Booking{
		ID:            uuid.New(),
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
		ArrivedAt:     ptr.Ptr(date(2023, 4, 3)),
	}
	repo := &stubBookingRepo{bookings: map[uuid.UUID]*domain.Booking{booking.ID: booking}}
	svc := newService(repo, nil, nil)

	_, err := svc.RecordDeparture(context.Background(), booking.ID, &models.RecordDepartureRequest{
		DepartedAt:            date(2023, 4, 14),
		TurnaroundWorkingDays: ptr.Ptr(domain.MaxTurnaroundWorkingDays + 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.departures)
}

func TestCancel(t *testing.T) {
	active := &domain.Booking{ID: uuid.New(), ArrivalDate: date(2023, 4, 3), DepartureDate: date(2023, 4, 14)}
	departed := &domain.Booking{
		ID:            uuid.New(),
		ArrivalDate:   date(2023, 4, 3),
		DepartureDate: date(2023, 4, 14),
		ArrivedAt:     ptr.Ptr(date(2023, 4, 3)),
		DepartedAt:    ptr.Ptr(date(2023, 4, 14)),
	}

	repo := &stubBookingRepo{bookings: map[uuid.UUID]*domain.Booking{
		active.ID:   active,
		departed.ID: departed,
	}}
	svc := newService(repo, nil, nil)

	err := svc.Cancel(context.Background(), active.ID, &models.CancelBookingRequest{CancellationReason: "placement withdrawn"})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{active.ID}, repo.cancelled)

	// Завершенное бронирование отменить нельзя
	err = svc.Cancel(context.Background(), departed.ID, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
