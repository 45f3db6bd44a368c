package get_bedspaces

import (
	"net/http"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
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

// Handle GET /api/v1/bedspaces?region={region}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var region *string
	if value := r.URL.Query().Get("region"); value != "" {
		region = &value
	}

	result, err := h.service.List(r.Context(), region)
	if err != nil {
		h.logger.Error("GET /bedspaces - Failed to list bedspaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bedspaces - Listed %d bedspaces", len(result.Bedspaces))
	handlers.RespondJSON(w, http.StatusOK, result)
}
