package create_booking

import (
	"errors"
	"net/http"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	"github.com/avdema/TA-ReportingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректный запрос, ожидаются bedspaceId и даты в формате YYYY-MM-DD"
	msgBedspaceNotFound   = "койко-место не найдено"
	msgBookingConflict    = "интервал пересекается с существующим бронированием или void-периодом"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBedspaceNotFound):
			h.logger.Warn("POST /bookings - Bedspace not found: bedspace_id=%s", req.BedspaceID)
			handlers.RespondNotFound(w, msgBedspaceNotFound)

		case errors.Is(err, bookings.ErrBookingConflict):
			h.logger.Warn("POST /bookings - Booking conflict: bedspace_id=%s", req.BedspaceID)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: bedspace_id=%s, error=%v", req.BedspaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
