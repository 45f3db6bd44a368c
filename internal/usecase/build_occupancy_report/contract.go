package build_occupancy_report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping возвращает кандидатов, затрагивающих окно (грубая выборка,
	// точный клиппинг выполняет usecase)
	FindOverlapping(ctx context.Context, bedspaceID uuid.UUID, window domain.ReportingWindow) ([]*domain.Booking, error)
}

// VoidRepository интерфейс репозитория void'ов
type VoidRepository interface {
	FindOverlapping(ctx context.Context, bedspaceID uuid.UUID, window domain.ReportingWindow) ([]*domain.Void, error)
}

// CalendarService интерфейс календаря рабочих дней
type CalendarService interface {
	AddWorkingDays(ctx context.Context, date time.Time, count int) (time.Time, error)
	CountWorkingDays(ctx context.Context, start, end time.Time) (int, error)
}

// StatusResolver интерфейс классификации статуса бронирования
type StatusResolver interface {
	Classify(b *domain.Booking) domain.BookingStatus
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DomainStatusResolver резолвер статусов по умолчанию,
// классифицирует по наличию sub-событий
type DomainStatusResolver struct{}

// Classify возвращает статус бронирования
func (DomainStatusResolver) Classify(b *domain.Booking) domain.BookingStatus {
	return domain.ResolveBookingStatus(b)
}
