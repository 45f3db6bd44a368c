package bedspaces

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdema/TA-ReportingService/internal/domain"
	bedspaceRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/bedspace"
	voidRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/void"
	"github.com/avdema/TA-ReportingService/internal/service/bedspaces/models"
	"github.com/avdema/TA-ReportingService/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type stubBedspaceRepo struct {
	bedspaces  map[uuid.UUID]*domain.Bedspace
	listResult []*domain.Bedspace
	lastRegion *string
}

func (s *stubBedspaceRepo) List(_ context.Context, region *string) ([]*domain.Bedspace, error) {
	s.lastRegion = region
	return s.listResult, nil
}

func (s *stubBedspaceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Bedspace, error) {
	bedspace, ok := s.bedspaces[id]
	if !ok {
		return nil, bedspaceRepo.ErrBedspaceNotFound
	}
	return bedspace, nil
}

type stubVoidRepo struct {
	voids     map[uuid.UUID]*domain.Void
	reasons   map[uuid.UUID]*domain.VoidReason
	created   *domain.Void
	cancelled []uuid.UUID
}

func (s *stubVoidRepo) Create(_ context.Context, v *domain.Void) (*domain.Void, error) {
	s.created = v
	return v, nil
}

func (s *stubVoidRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Void, error) {
	v, ok := s.voids[id]
	if !ok {
		return nil, voidRepo.ErrVoidNotFound
	}
	return v, nil
}

func (s *stubVoidRepo) Cancel(_ context.Context, id uuid.UUID, _ time.Time) error {
	s.cancelled = append(s.cancelled, id)
	return nil
}

func (s *stubVoidRepo) GetReasonByID(_ context.Context, id uuid.UUID) (*domain.VoidReason, error) {
	reason, ok := s.reasons[id]
	if !ok {
		return nil, voidRepo.ErrReasonNotFound
	}
	return reason, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList_PassesRegionFilter(t *testing.T) {
	repo := &stubBedspaceRepo{
		listResult: []*domain.Bedspace{
			{ID: uuid.New(), Reference: "Room 1", PropertyName: "Acacia House", OnlineFrom: date(2022, 1, 1)},
		},
	}
	svc := NewService(repo, &stubVoidRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), ptr.Ptr("North East"))
	require.NoError(t, err)
	require.Len(t, resp.Bedspaces, 1)
	assert.Equal(t, "Room 1", resp.Bedspaces[0].Reference)
	assert.Equal(t, "2022-01-01", resp.Bedspaces[0].OnlineFrom)
	require.NotNil(t, repo.lastRegion)
	assert.Equal(t, "North East", *repo.lastRegion)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubBedspaceRepo{}, &stubVoidRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBedspaceNotFound)
}

func TestCreateVoid_Success(t *testing.T) {
	bedspaceID := uuid.New()
	reasonID := uuid.New()

	bedspaces := &stubBedspaceRepo{bedspaces: map[uuid.UUID]*domain.Bedspace{
		bedspaceID: {ID: bedspaceID, Reference: "Room 1", OnlineFrom: date(2022, 1, 1)},
	}}
	voids := &stubVoidRepo{reasons: map[uuid.UUID]*domain.VoidReason{
		reasonID: {ID: reasonID, Name: "Damage repair"},
	}}
	svc := NewService(bedspaces, voids, nopLogger{})

	resp, err := svc.CreateVoid(context.Background(), &models.CreateVoidRequest{
		BedspaceID: bedspaceID,
		StartDate:  date(2023, 4, 5),
		EndDate:    date(2023, 4, 7),
		ReasonID:   reasonID,
		Notes:      ptr.Ptr("broken window"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Damage repair", resp.Reason)
	assert.Equal(t, "2023-04-05", resp.StartDate)
	assert.Equal(t, "2023-04-07", resp.EndDate)
	require.NotNil(t, voids.created)
	assert.Equal(t, bedspaceID, voids.created.BedspaceID)
}

func TestCreateVoid_InvertedInterval(t *testing.T) {
	svc := NewService(&stubBedspaceRepo{}, &stubVoidRepo{}, nopLogger{})

	_, err := svc.CreateVoid(context.Background(), &models.CreateVoidRequest{
		BedspaceID: uuid.New(),
		StartDate:  date(2023, 4, 7),
		EndDate:    date(2023, 4, 5),
		ReasonID:   uuid.New(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateVoid_UnknownReason(t *testing.T) {
	bedspaceID := uuid.New()
	bedspaces := &stubBedspaceRepo{bedspaces: map[uuid.UUID]*domain.Bedspace{
		bedspaceID: {ID: bedspaceID, OnlineFrom: date(2022, 1, 1)},
	}}
	svc := NewService(bedspaces, &stubVoidRepo{}, nopLogger{})

	_, err := svc.CreateVoid(context.Background(), &models.CreateVoidRequest{
		BedspaceID: bedspaceID,
		StartDate:  date(2023, 4, 5),
		EndDate:    date(2023, 4, 7),
		ReasonID:   uuid.New(),
	})
	assert.ErrorIs(t, err, ErrVoidReasonNotFound)
}

func TestCancelVoid(t *testing.T) {
	active := &domain.Void{ID: uuid.New(), StartDate: date(2023, 4, 5), EndDate: date(2023, 4, 7)}
	cancelled := &domain.Void{
		ID:          uuid.New(),
		StartDate:   date(2023, 4, 10),
		EndDate:     date(2023, 4, 12),
		CancelledAt: ptr.Ptr(date(2023, 4, 9)),
	}

	voids := &stubVoidRepo{voids: map[uuid.UUID]*domain.Void{
		active.ID:    active,
		cancelled.ID: cancelled,
	}}
	svc := NewService(&stubBedspaceRepo{}, voids, nopLogger{})

	err := svc.CancelVoid(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{active.ID}, voids.cancelled)

	err = svc.CancelVoid(context.Background(), cancelled.ID)
	assert.ErrorIs(t, err, ErrVoidAlreadyCancelled)

	err = svc.CancelVoid(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVoidNotFound)
}
