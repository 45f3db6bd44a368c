package get_occupancy_report

import (
	"github.com/avdema/TA-ReportingService/internal/domain"
	buildOccupancyReport "github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
)

// OccupancyRowResponse одна строка отчета в HTTP ответе
type OccupancyRowResponse struct {
	Property                  string  `json:"property"`
	Bedspace                  string  `json:"bedspace"`
	BedspaceStartDate         string  `json:"bedspaceStartDate"`
	BedspaceEndDate           *string `json:"bedspaceEndDate,omitempty"`
	OnlineDays                int     `json:"onlineDays"`
	BookedDaysActiveAndClosed int     `json:"bookedDaysActiveAndClosed"`
	ConfirmedDays             int     `json:"confirmedDays"`
	ScheduledTurnaroundDays   int     `json:"scheduledTurnaroundDays"`
	EffectiveTurnaroundDays   int     `json:"effectiveTurnaroundDays"`
	VoidDays                  int     `json:"voidDays"`
	TotalBookedDays           int     `json:"totalBookedDays"`
	OccupancyRate             float64 `json:"occupancyRate"`
}

// OccupancyReportResponse HTTP response model
type OccupancyReportResponse struct {
	StartDate string                 `json:"startDate"`
	EndDate   string                 `json:"endDate"`
	Rows      []OccupancyRowResponse `json:"rows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildOccupancyReport.Response) *OccupancyReportResponse {
	out := &OccupancyReportResponse{
		StartDate: resp.Window.StartDate.Format(domain.DateFormat),
		EndDate:   resp.Window.EndDate.Format(domain.DateFormat),
		Rows:      make([]OccupancyRowResponse, 0, len(resp.Rows)),
	}

	for _, row := range resp.Rows {
		var endDate *string
		if row.BedspaceEndDate != nil {
			formatted := row.BedspaceEndDate.Format(domain.DateFormat)
			endDate = &formatted
		}

		out.Rows = append(out.Rows, OccupancyRowResponse{
			Property:                  row.PropertyRef,
			Bedspace:                  row.BedspaceRef,
			BedspaceStartDate:         row.BedspaceStartDate.Format(domain.DateFormat),
			BedspaceEndDate:           endDate,
			OnlineDays:                row.OnlineDays,
			BookedDaysActiveAndClosed: row.BookedDaysActiveAndClosed,
			ConfirmedDays:             row.ConfirmedDays,
			ScheduledTurnaroundDays:   row.ScheduledTurnaroundDays,
			EffectiveTurnaroundDays:   row.EffectiveTurnaroundDays,
			VoidDays:                  row.VoidDays,
			TotalBookedDays:           row.TotalBookedDays,
			OccupancyRate:             row.OccupancyRate,
		})
	}

	return out
}
