package export_occupancy_report

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/internal/reports/xlsx"
	buildOccupancyReport "github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
)

const (
	msgMissingWindow = "не задано отчетное окно: startDate+endDate или year+month"
	msgInvalidWindow = "некорректные параметры отчетного окна"
	msgInvalidInput  = "некорректные входные данные отчета"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
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

// Handle GET /api/v1/reports/occupancy/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window, err := handlers.ParseReportWindow(r)
	if err != nil {
		if errors.Is(err, handlers.ErrMissingWindow) {
			h.logger.Warn("GET /reports/occupancy/export - Missing reporting window")
			handlers.RespondBadRequest(w, msgMissingWindow)
			return
		}
		h.logger.Warn("GET /reports/occupancy/export - Invalid reporting window")
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	region := handlers.ParseRegion(r)

	bedspaces, err := h.lister.List(r.Context(), region)
	if err != nil {
		h.logger.Error("GET /reports/occupancy/export - Failed to list bedspaces: %v", err)
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
			h.logger.Warn("GET /reports/occupancy/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /reports/occupancy/export - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Книга собирается в буфер: при ошибке записи клиент получит 500,
	// а не обрезанный файл
	var buf bytes.Buffer
	if err := xlsx.WriteOccupancyReport(&buf, result); err != nil {
		h.logger.Error("GET /reports/occupancy/export - Failed to write workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("occupancy-report-%s-%s.xlsx",
		window.StartDate.Format(domain.DateFormat),
		window.EndDate.Format(domain.DateFormat))

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	h.logger.Info("GET /reports/occupancy/export - Report exported: rows=%d, file=%s", len(result.Rows), filename)
}
