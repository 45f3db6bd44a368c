package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
	bedspaceRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/bedspace"
	bookingRepo "github.com/avdema/TA-ReportingService/internal/infra/storage/booking"
	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo  BookingRepository
	voidRepo     VoidRepository
	bedspaceRepo BedspaceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	voidRepo VoidRepository,
	bedspaceRepo BedspaceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		voidRepo:     voidRepo,
		bedspaceRepo: bedspaceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает бронирование койко-места.
// Интервал [arrival, departure] не должен пересекаться с другими
// неотмененными бронированиями и void-периодами того же койко-места.
// Проверка и вставка выполняются в serializable-транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: creating booking for bedspace=%s, arrival=%s, departure=%s",
		req.BedspaceID,
		req.ArrivalDate.Format(domain.DateFormat),
		req.DepartureDate.Format(domain.DateFormat))

	if err := validateInterval(req.ArrivalDate, req.DepartureDate); err != nil {
		s.logger.Warn("Create: invalid interval for bedspace=%s: %v", req.BedspaceID, err)
		return nil, err
	}

	// Проверяем, что койко-место существует
	if _, err := s.bedspaceRepo.GetByID(ctx, req.BedspaceID); err != nil {
		if errors.Is(err, bedspaceRepo.ErrBedspaceNotFound) {
			s.logger.Warn("Create: bedspace=%s not found", req.BedspaceID)
			return nil, ErrBedspaceNotFound
		}
		s.logger.Error("Create: repository error for bedspace=%s: %v", req.BedspaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		ID:            uuid.New(),
		BedspaceID:    req.BedspaceID,
		CRN:           req.CRN,
		ArrivalDate:   domain.DateOf(req.ArrivalDate),
		DepartureDate: domain.DateOf(req.DepartureDate),
	}

	var created *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.checkConflicts(ctx, booking); err != nil {
			return err
		}

		var err error
		created, err = s.bookingRepo.Create(ctx, booking)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			s.logger.Warn("Create: conflict for bedspace=%s", req.BedspaceID)
			return nil, ErrBookingConflict
		}
		s.logger.Error("Create: failed to create booking for bedspace=%s: %v", req.BedspaceID, err)
		return nil, fmt.Errorf("%w: Create - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created booking id=%s", created.ID)
	return models.FromDomainBooking(created), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// Confirm подтверждает provisional-бронирование
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "Confirm")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%s cannot be confirmed, status=%s",
			id, domain.ResolveBookingStatus(booking))
		return nil, ErrCannotConfirm
	}

	now := time.Now().UTC()
	if err := s.bookingRepo.SetConfirmed(ctx, id, now); err != nil {
		s.logger.Error("Confirm: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.ConfirmedAt = &now
	s.logger.Info("Confirm: successfully confirmed booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// RecordArrival фиксирует заезд
func (s *Service) RecordArrival(ctx context.Context, id uuid.UUID, arrivedAt time.Time) (*models.BookingResponse, error) {
	s.logger.Info("RecordArrival: recording arrival for booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "RecordArrival")
	if err != nil {
		return nil, err
	}

	if !booking.CanRecordArrival() {
		s.logger.Warn("RecordArrival: booking id=%s cannot record arrival, status=%s",
			id, domain.ResolveBookingStatus(booking))
		return nil, ErrCannotRecordArrival
	}

	arrivedAt = arrivedAt.UTC()
	if err := s.bookingRepo.SetArrival(ctx, id, arrivedAt); err != nil {
		s.logger.Error("RecordArrival: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: RecordArrival - repository error: %v", ErrInternal, err)
	}

	booking.ArrivedAt = &arrivedAt
	s.logger.Info("RecordArrival: successfully recorded arrival for booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// RecordDeparture фиксирует выезд и, если задан, прикрепляет turnaround.
// Обе записи выполняются в одной транзакции
func (s *Service) RecordDeparture(ctx context.Context, id uuid.UUID, req *models.RecordDepartureRequest) (*models.BookingResponse, error) {
	s.logger.Info("RecordDeparture: recording departure for booking id=%s", id)

	if req.TurnaroundWorkingDays != nil {
		if *req.TurnaroundWorkingDays < 0 || *req.TurnaroundWorkingDays > domain.MaxTurnaroundWorkingDays {
			s.logger.Warn("RecordDeparture: invalid turnaround working days=%d for booking id=%s",
				*req.TurnaroundWorkingDays, id)
			return nil, fmt.Errorf("%w: turnaround working days must be between 0 and %d",
				ErrInvalidInput, domain.MaxTurnaroundWorkingDays)
		}
	}

	booking, err := s.getBooking(ctx, id, "RecordDeparture")
	if err != nil {
		return nil, err
	}

	if !booking.CanRecordDeparture() {
		s.logger.Warn("RecordDeparture: booking id=%s cannot record departure, status=%s",
			id, domain.ResolveBookingStatus(booking))
		return nil, ErrCannotRecordDeparture
	}

	departedAt := req.DepartedAt.UTC()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.SetDeparture(ctx, id, departedAt); err != nil {
			return err
		}

		if req.TurnaroundWorkingDays == nil {
			return nil
		}

		turnaround := &domain.Turnaround{
			ID:              uuid.New(),
			BookingID:       id,
			WorkingDayCount: *req.TurnaroundWorkingDays,
		}
		if err := s.bookingRepo.CreateTurnaround(ctx, turnaround); err != nil {
			return err
		}
		booking.Turnaround = turnaround
		return nil
	})
	if err != nil {
		s.logger.Error("RecordDeparture: failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: RecordDeparture - transaction error: %v", ErrInternal, err)
	}

	booking.DepartedAt = &departedAt
	s.logger.Info("RecordDeparture: successfully recorded departure for booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование. Отмененное бронирование выпадает из
// отчетов, но остается в истории
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%s", id)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, id, "Cancel")
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s",
			id, domain.ResolveBookingStatus(booking))
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, time.Now().UTC(), req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return nil
}

// Вспомогательные методы

// getBooking получает бронирование с маппингом ошибок репозитория
func (s *Service) getBooking(ctx context.Context, id uuid.UUID, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkConflicts проверяет пересечения нового бронирования с неотмененными
// бронированиями и void-периодами того же койко-места
func (s *Service) checkConflicts(ctx context.Context, booking *domain.Booking) error {
	window, err := domain.NewReportingWindow(booking.ArrivalDate, booking.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.bookingRepo.FindOverlapping(ctx, booking.BedspaceID, window)
	if err != nil {
		return err
	}
	for _, b := range existing {
		if b.IsCancelled() {
			continue
		}
		if _, ok := window.Clip(b.ArrivalDate, b.DepartureDate); ok {
			return ErrBookingConflict
		}
	}

	voids, err := s.voidRepo.FindOverlapping(ctx, booking.BedspaceID, window)
	if err != nil {
		return err
	}
	for _, v := range voids {
		if v.IsCancelled() {
			continue
		}
		if _, ok := window.Clip(v.StartDate, v.EndDate); ok {
			return ErrBookingConflict
		}
	}

	return nil
}

// validateInterval проверяет интервал бронирования
func validateInterval(arrival, departure time.Time) error {
	if arrival.IsZero() || departure.IsZero() {
		return fmt.Errorf("%w: arrival and departure dates are required", ErrInvalidInput)
	}
	if domain.DateOf(arrival).After(domain.DateOf(departure)) {
		return fmt.Errorf("%w: arrival date is after departure date", ErrInvalidInput)
	}
	return nil
}
