package bedspaces

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
	bedspaceRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/bedspace"
	voidRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/void"
	"github.com/avdema/TA-ReportingService/internal/service/bedspaces/models"
)

// Service сервис для работы с койко-местами и их void-периодами
type Service struct {
	bedspaceRepo BedspaceRepository
	voidRepo     VoidRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса койко-мест
func NewService(
	bedspaceRepo BedspaceRepository,
	voidRepo VoidRepository,
	logger Logger,
) *Service {
	return &Service{
		bedspaceRepo: bedspaceRepo,
		voidRepo:     voidRepo,
		logger:       logger,
	}
}

// List возвращает койко-места, опционально отфильтрованные по региону
func (s *Service) List(ctx context.Context, region *string) (*models.BedspaceListResponse, error) {
	if region != nil {
		s.logger.Info("List: fetching bedspaces for region=%s", *region)
	} else {
		s.logger.Info("List: fetching all bedspaces")
	}

	bedspaces, err := s.bedspaceRepo.List(ctx, region)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bedspaces", len(bedspaces))
	return models.FromDomainBedspaceList(bedspaces), nil
}

// GetByID получает койко-место по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BedspaceResponse, error) {
	s.logger.Info("GetByID: fetching bedspace id=%s", id)

	bedspace, err := s.bedspaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bedspaceRepo.ErrBedspaceNotFound) {
			s.logger.Warn("GetByID: bedspace id=%s not found", id)
			return nil, ErrBedspaceNotFound
		}
		s.logger.Error("GetByID: repository error for bedspace id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBedspace(bedspace), nil
}

// CreateVoid создает void-период для койко-места
func (s *Service) CreateVoid(ctx context.Context, req *models.CreateVoidRequest) (*models.VoidResponse, error) {
	s.logger.Info("CreateVoid: creating void for bedspace=%s, start=%s, end=%s",
		req.BedspaceID,
		req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat))

	if err := validateVoidRequest(req); err != nil {
		s.logger.Warn("CreateVoid: validation failed for bedspace=%s: %v", req.BedspaceID, err)
		return nil, err
	}

	// Проверяем, что койко-место существует
	if _, err := s.bedspaceRepo.GetByID(ctx, req.BedspaceID); err != nil {
		if errors.Is(err, bedspaceRepo.ErrBedspaceNotFound) {
			s.logger.Warn("CreateVoid: bedspace=%s not found", req.BedspaceID)
			return nil, ErrBedspaceNotFound
		}
		s.logger.Error("CreateVoid: repository error for bedspace=%s: %v", req.BedspaceID, err)
		return nil, fmt.Errorf("%w: CreateVoid - repository error: %v", ErrInternal, err)
	}

	// Категория должна существовать
	reason, err := s.voidRepo.GetReasonByID(ctx, req.ReasonID)
	if err != nil {
		if errors.Is(err, voidRepo.ErrReasonNotFound) {
			s.logger.Warn("CreateVoid: void reason=%s not found", req.ReasonID)
			return nil, ErrVoidReasonNotFound
		}
		s.logger.Error("CreateVoid: repository error for reason=%s: %v", req.ReasonID, err)
		return nil, fmt.Errorf("%w: CreateVoid - repository error: %v", ErrInternal, err)
	}

	v := &domain.Void{
		ID:         uuid.New(),
		BedspaceID: req.BedspaceID,
		StartDate:  domain.DateOf(req.StartDate),
		EndDate:    domain.DateOf(req.EndDate),
		Reason:     *reason,
		Notes:      req.Notes,
		CostCentre: req.CostCentre,
	}

	created, err := s.voidRepo.Create(ctx, v)
	if err != nil {
		s.logger.Error("CreateVoid: failed to create void for bedspace=%s: %v", req.BedspaceID, err)
		return nil, fmt.Errorf("%w: CreateVoid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVoid: successfully created void id=%s", created.ID)
	return models.FromDomainVoid(created), nil
}

// CancelVoid отменяет void-период. Отмененный void выпадает из отчетов
func (s *Service) CancelVoid(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("CancelVoid: cancelling void id=%s", id)

	v, err := s.voidRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, voidRepo.ErrVoidNotFound) {
			s.logger.Warn("CancelVoid: void id=%s not found", id)
			return ErrVoidNotFound
		}
		s.logger.Error("CancelVoid: repository error for void id=%s: %v", id, err)
		return fmt.Errorf("%w: CancelVoid - repository error: %v", ErrInternal, err)
	}

	if v.IsCancelled() {
		s.logger.Warn("CancelVoid: void id=%s is already cancelled", id)
		return ErrVoidAlreadyCancelled
	}

	if err := s.voidRepo.Cancel(ctx, id, time.Now().UTC()); err != nil {
		s.logger.Error("CancelVoid: repository error for void id=%s: %v", id, err)
		return fmt.Errorf("%w: CancelVoid - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelVoid: successfully cancelled void id=%s", id)
	return nil
}

// validateVoidRequest проверяет инварианты запроса на создание void'а
func validateVoidRequest(req *models.CreateVoidRequest) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if domain.DateOf(req.StartDate).After(domain.DateOf(req.EndDate)) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxVoidNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxVoidNotesLength)
	}
	return nil
}
