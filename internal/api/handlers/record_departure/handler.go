package record_departure

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	"github.com/avdema/TA-ReportingService/internal/service/bookings"
	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgBookingNotFound       = "бронирование не найдено"
	msgCannotRecordDeparture = "выезд нельзя зафиксировать в текущем статусе"
	msgInvalidTurnaround     = "некорректная длительность turnaround'а"
)

// RecordDepartureRequest HTTP request model
type RecordDepartureRequest struct {
	DepartedAt            time.Time `json:"departedAt"`
	TurnaroundWorkingDays *int      `json:"turnaroundWorkingDays,omitempty"`
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

// Handle POST /api/v1/bookings/{id}/departure
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/departure - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RecordDepartureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/departure - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DepartedAt.IsZero() {
		req.DepartedAt = time.Now().UTC()
	}

	result, err := h.service.RecordDeparture(r.Context(), id, &models.RecordDepartureRequest{
		DepartedAt:            req.DepartedAt,
		TurnaroundWorkingDays: req.TurnaroundWorkingDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/departure - Booking not found: booking_id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotRecordDeparture):
			h.logger.Warn("POST /bookings/{id}/departure - Cannot record departure: booking_id=%s", id)
			handlers.RespondConflict(w, msgCannotRecordDeparture)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/departure - Invalid turnaround: booking_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidTurnaround)

		default:
			h.logger.Error("POST /bookings/{id}/departure - Failed: booking_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/departure - Departure recorded: booking_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
