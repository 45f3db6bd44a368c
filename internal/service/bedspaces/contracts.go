package bedspaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// BedspaceRepository интерфейс репозитория койко-мест
type BedspaceRepository interface {
	List(ctx context.Context, region *string) ([]*domain.Bedspace, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bedspace, error)
}

// VoidRepository интерфейс репозитория void-периодов
type VoidRepository interface {
	Create(ctx context.Context, v *domain.Void) (*domain.Void, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Void, error)
	Cancel(ctx context.Context, id uuid.UUID, at time.Time) error
	GetReasonByID(ctx context.Context, id uuid.UUID) (*domain.VoidReason, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
