package get_usage_report

import (
	"errors"
	"net/http"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	buildUsageReport "github.com/avdema/TA-ReportingService/internal/usecase/build_usage_report"
)

const (
	msgMissingWindow = "не задано отчетное окно: startDate+endDate или year+month"
	msgInvalidWindow = "некорректные параметры отчетного окна"
	msgInvalidInput  = "некорректные входные данные отчета"
)

type Handler struct {
	useCase UsageReportUseCase
	lister  BedspaceLister
	logger  Logger
}

func NewHandler(useCase UsageReportUseCase, lister BedspaceLister, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		lister:  lister,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/usage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window, err := handlers.ParseReportWindow(r)
	if err != nil {
		if errors.Is(err, handlers.ErrMissingWindow) {
			h.logger.Warn("GET /reports/usage - Missing reporting window")
			handlers.RespondBadRequest(w, msgMissingWindow)
			return
		}
		h.logger.Warn("GET /reports/usage - Invalid reporting window")
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	region := handlers.ParseRegion(r)

	bedspaces, err := h.lister.List(r.Context(), region)
	if err != nil {
		h.logger.Error("GET /reports/usage - Failed to list bedspaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &buildUsageReport.Request{
		Window:    window,
		Region:    region,
		Bedspaces: bedspaces,
	})
	if err != nil {
		if errors.Is(err, buildUsageReport.ErrInvalidInput) {
			h.logger.Warn("GET /reports/usage - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /reports/usage - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/usage - Report built: rows=%d", len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
