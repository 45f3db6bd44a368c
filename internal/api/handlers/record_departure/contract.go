package record_departure

import (
	"context"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
)

type BookingsService interface {
	RecordDeparture(ctx context.Context, id uuid.UUID, req *models.RecordDepartureRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
