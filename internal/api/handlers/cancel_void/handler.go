package cancel_void

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	"github.com/avdema/TA-ReportingService/internal/api/middleware"
	"github.com/avdema/TA-ReportingService/internal/service/bedspaces"
)

const (
	msgInvalidVoidID    = "некорректный ID void-периода"
	msgVoidNotFound     = "void-период не найден"
	msgAlreadyCancelled = "void-период уже отменен"
)

type Handler struct {
	service BedspacesService
	logger  Logger
}

func NewHandler(service BedspacesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/voids/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("POST /voids/{id}/cancel - Invalid void ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVoidID)
		return
	}

	if err := h.service.CancelVoid(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bedspaces.ErrVoidNotFound):
			h.logger.Warn("POST /voids/{id}/cancel - Void not found: void_id=%s", id)
			handlers.RespondNotFound(w, msgVoidNotFound)

		case errors.Is(err, bedspaces.ErrVoidAlreadyCancelled):
			h.logger.Warn("POST /voids/{id}/cancel - Already cancelled: void_id=%s", id)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("POST /voids/{id}/cancel - Failed: void_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("POST /voids/{id}/cancel - Void cancelled: void_id=%s, user_id=%s", id, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
