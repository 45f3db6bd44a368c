package create_void

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	"github.com/avdema/TA-ReportingService/internal/service/bedspaces"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBedspaceID  = "некорректный ID койко-места"
	msgInvalidRequest     = "некорректный запрос, ожидаются reasonId и даты в формате YYYY-MM-DD"
	msgBedspaceNotFound   = "койко-место не найдено"
	msgReasonNotFound     = "категория void'а не найдена"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/bedspaces/{id}/voids
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bedspaceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("POST /bedspaces/{id}/voids - Invalid bedspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBedspaceID)
		return
	}

	var req CreateVoidRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bedspaces/{id}/voids - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(bedspaceID)
	if err != nil {
		h.logger.Warn("POST /bedspaces/{id}/voids - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.service.CreateVoid(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bedspaces.ErrBedspaceNotFound):
			h.logger.Warn("POST /bedspaces/{id}/voids - Bedspace not found: bedspace_id=%s", bedspaceID)
			handlers.RespondNotFound(w, msgBedspaceNotFound)

		case errors.Is(err, bedspaces.ErrVoidReasonNotFound):
			h.logger.Warn("POST /bedspaces/{id}/voids - Reason not found: bedspace_id=%s", bedspaceID)
			handlers.RespondNotFound(w, msgReasonNotFound)

		case errors.Is(err, bedspaces.ErrInvalidInput):
			h.logger.Warn("POST /bedspaces/{id}/voids - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bedspaces/{id}/voids - Failed: bedspace_id=%s, error=%v", bedspaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bedspaces/{id}/voids - Void created: void_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
