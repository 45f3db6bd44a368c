package create_booking

import (
	"context"

	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
)

type BookingsService interface {
	Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
