package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, bedspaceID uuid.UUID, window domain.ReportingWindow) ([]*domain.Booking, error)
	SetConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error
	SetArrival(ctx context.Context, id uuid.UUID, at time.Time) error
	SetDeparture(ctx context.Context, id uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, id uuid.UUID, at time.Time, reason string) error
	CreateTurnaround(ctx context.Context, turnaround *domain.Turnaround) error
}

// VoidRepository интерфейс репозитория void-периодов
type VoidRepository interface {
	FindOverlapping(ctx context.Context, bedspaceID uuid.UUID, window domain.ReportingWindow) ([]*domain.Void, error)
}

// BedspaceRepository интерфейс репозитория койко-мест
type BedspaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bedspace, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
