package record_arrival

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
)

type BookingsService interface {
	RecordArrival(ctx context.Context, id uuid.UUID, arrivedAt time.Time) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
