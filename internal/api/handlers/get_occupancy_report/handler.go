package get_occupancy_report

import (
	"errors"
	"net/http"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	buildOccupancyReport "github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
)

const (
	msgMissingWindow = "не задано отчетное окно: startDate+endDate или year+month"
	msgInvalidWindow = "некорректные параметры отчетного окна"
	msgInvalidInput  = "некорректные входные данные отчета"
)

type Handler struct {
	useCase OccupancyReportUseCase
	lister  BedspaceLister
	logger  Logger
}

func NewHandler(useCase OccupancyReportUseCase, lister BedspaceLister, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		lister:  lister,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window, err := handlers.ParseReportWindow(r)
	if err != nil {
		if errors.Is(err, handlers.ErrMissingWindow) {
			h.logger.Warn("GET /reports/occupancy - Missing reporting window")
			handlers.RespondBadRequest(w, msgMissingWindow)
			return
		}
		h.logger.Warn("GET /reports/occupancy - Invalid reporting window")
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	region := handlers.ParseRegion(r)

	bedspaces, err := h.lister.List(r.Context(), region)
	if err != nil {
		h.logger.Error("GET /reports/occupancy - Failed to list bedspaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &buildOccupancyReport.Request{
		Window:    window,
		Region:    region,
		Bedspaces: bedspaces,
	})
	if err != nil {
		if errors.Is(err, buildOccupancyReport.ErrInvalidInput) {
			h.logger.Warn("GET /reports/occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /reports/occupancy - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/occupancy - Report built: rows=%d", len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
