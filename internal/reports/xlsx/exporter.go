package xlsx

import (
	"fmt"
	"io"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
	"github.com/avdema/TA-ReportingService/internal/usecase/build_usage_report"
)

var usageColumns = []string{
	"Property",
	"Bedspace",
	"Type",
	"Start Date",
	"End Date",
	"Duration (days)",
	"CRN",
	"Status",
	"Void Category",
	"Void Notes",
	"Cost Centre",
}

var occupancyColumns = []string{
	"Property",
	"Bedspace",
	"Bedspace Start Date",
	"Bedspace End Date",
	"Online Days",
	"Booked Days (Active & Closed)",
	"Confirmed Days",
	"Scheduled Turnaround Days",
	"Effective Turnaround Days",
	"Void Days",
	"Total Booked Days",
	"Occupancy Rate",
}

// WriteUsageReport пишет отчет об использовании койко-мест в формате xlsx
func WriteUsageReport(w io.Writer, resp *build_usage_report.Response) error {
	sw := newSheetWriter()

	if err := sw.addSheet("Usage"); err != nil {
		return fmt.Errorf("usage report: %w", err)
	}
	if err := sw.writeHeader(usageColumns); err != nil {
		return fmt.Errorf("usage report: %w", err)
	}

	for _, row := range resp.Rows {
		cells := []interface{}{
			row.PropertyRef,
			row.BedspaceRef,
			string(row.Type),
			row.StartDate.Format(domain.DateFormat),
			row.EndDate.Format(domain.DateFormat),
			row.DurationDays,
			strValue(row.CRN),
			statusValue(row.Status),
			strValue(row.VoidCategory),
			strValue(row.VoidNotes),
			strValue(row.CostCentre),
		}
		if err := sw.writeRow(cells); err != nil {
			return fmt.Errorf("usage report: %w", err)
		}
	}

	return sw.save(w)
}

// WriteOccupancyReport пишет отчет о занятости койко-мест в формате xlsx
func WriteOccupancyReport(w io.Writer, resp *build_occupancy_report.Response) error {
	sw := newSheetWriter()

	if err := sw.addSheet("Occupancy"); err != nil {
		return fmt.Errorf("occupancy report: %w", err)
	}
	if err := sw.writeHeader(occupancyColumns); err != nil {
		return fmt.Errorf("occupancy report: %w", err)
	}

	for _, row := range resp.Rows {
		endDate := ""
		if row.BedspaceEndDate != nil {
			endDate = row.BedspaceEndDate.Format(domain.DateFormat)
		}

		cells := []interface{}{
			row.PropertyRef,
			row.BedspaceRef,
			row.BedspaceStartDate.Format(domain.DateFormat),
			endDate,
			row.OnlineDays,
			row.BookedDaysActiveAndClosed,
			row.ConfirmedDays,
			row.ScheduledTurnaroundDays,
			row.EffectiveTurnaroundDays,
			row.VoidDays,
			row.TotalBookedDays,
			row.OccupancyRate,
		}
		if err := sw.writeRow(cells); err != nil {
			return fmt.Errorf("occupancy report: %w", err)
		}
	}

	return sw.save(w)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func statusValue(s *domain.BookingStatus) string {
	if s == nil {
		return ""
	}
	return string(*s)
}
