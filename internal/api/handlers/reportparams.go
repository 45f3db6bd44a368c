package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

var (
	// ErrMissingWindow возвращается, когда отчетное окно не задано
	ErrMissingWindow = errors.New("reporting window is required")

	// ErrInvalidWindowParams возвращается при некорректных параметрах окна
	ErrInvalidWindowParams = errors.New("invalid reporting window parameters")
)

// ParseReportWindow извлекает отчетное окно из query-параметров.
// Поддерживаются две формы: startDate+endDate (YYYY-MM-DD) или year+month
func ParseReportWindow(r *http.Request) (domain.ReportingWindow, error) {
	query := r.URL.Query()

	startStr := query.Get("startDate")
	endStr := query.Get("endDate")
	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			return domain.ReportingWindow{}, ErrInvalidWindowParams
		}

		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return domain.ReportingWindow{}, ErrInvalidWindowParams
		}
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return domain.ReportingWindow{}, ErrInvalidWindowParams
		}

		window, err := domain.NewReportingWindow(start, end)
		if err != nil {
			return domain.ReportingWindow{}, ErrInvalidWindowParams
		}
		return window, nil
	}

	yearStr := query.Get("year")
	monthStr := query.Get("month")
	if yearStr == "" && monthStr == "" {
		return domain.ReportingWindow{}, ErrMissingWindow
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return domain.ReportingWindow{}, ErrInvalidWindowParams
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return domain.ReportingWindow{}, ErrInvalidWindowParams
	}

	return domain.WindowForMonth(year, time.Month(month)), nil
}

// ParseRegion извлекает опциональный фильтр по региону
func ParseRegion(r *http.Request) *string {
	if value := r.URL.Query().Get("region"); value != "" {
		return &value
	}
	return nil
}
