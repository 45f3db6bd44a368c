package record_arrival

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	"github.com/avdema/TA-ReportingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgBookingNotFound     = "бронирование не найдено"
	msgCannotRecordArrival = "заезд нельзя зафиксировать в текущем статусе"
)

// RecordArrivalRequest HTTP request model
type RecordArrivalRequest struct {
	ArrivedAt time.Time `json:"arrivedAt"`
}

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

// Handle POST /api/v1/bookings/{id}/arrival
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/arrival - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RecordArrivalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/arrival - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ArrivedAt.IsZero() {
		req.ArrivedAt = time.Now().UTC()
	}

	result, err := h.service.RecordArrival(r.Context(), id, req.ArrivedAt)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/arrival - Booking not found: booking_id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotRecordArrival):
			h.logger.Warn("POST /bookings/{id}/arrival - Cannot record arrival: booking_id=%s", id)
			handlers.RespondConflict(w, msgCannotRecordArrival)

		default:
			h.logger.Error("POST /bookings/{id}/arrival - Failed: booking_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/arrival - Arrival recorded: booking_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
