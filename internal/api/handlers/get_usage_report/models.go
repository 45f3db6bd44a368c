package get_usage_report

import (
	"github.com/avdema/TA-ReportingService/internal/domain"
	buildUsageReport "github.com/avdema/TA-ReportingService/internal/usecase/build_usage_report"
)

// UsageRowResponse одна строка отчета в HTTP ответе
type UsageRowResponse struct {
	Property     string  `json:"property"`
	Bedspace     string  `json:"bedspace"`
	Type         string  `json:"type"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	DurationDays int     `json:"durationDays"`
	CRN          *string `json:"crn,omitempty"`
	Status       *string `json:"status,omitempty"`
	VoidCategory *string `json:"voidCategory,omitempty"`
	VoidNotes    *string `json:"voidNotes,omitempty"`
	CostCentre   *string `json:"costCentre,omitempty"`
}

// UsageReportResponse HTTP response model
type UsageReportResponse struct {
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Rows      []UsageRowResponse `json:"rows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildUsageReport.Response) *UsageReportResponse {
	out := &UsageReportResponse{
		StartDate: resp.Window.StartDate.Format(domain.DateFormat),
		EndDate:   resp.Window.EndDate.Format(domain.DateFormat),
		Rows:      make([]UsageRowResponse, 0, len(resp.Rows)),
	}

	for _, row := range resp.Rows {
		var status *string
		if row.Status != nil {
			s := string(*row.Status)
			status = &s
		}

		out.Rows = append(out.Rows, UsageRowResponse{
			Property:     row.PropertyRef,
			Bedspace:     row.BedspaceRef,
			Type:         string(row.Type),
			StartDate:    row.StartDate.Format(domain.DateFormat),
			EndDate:      row.EndDate.Format(domain.DateFormat),
			DurationDays: row.DurationDays,
			CRN:          row.CRN,
			Status:       status,
			VoidCategory: row.VoidCategory,
			VoidNotes:    row.VoidNotes,
			CostCentre:   row.CostCentre,
		})
	}

	return out
}
