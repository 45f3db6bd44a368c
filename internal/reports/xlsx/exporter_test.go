package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
	"github.com/avdema/TA-ReportingService/internal/usecase/build_usage_report"
	"github.com/avdema/TA-ReportingService/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWriteUsageReport(t *testing.T) {
	status := domain.StatusArrived
	resp := &build_usage_report.Response{
		Window: domain.ReportingWindow{StartDate: date(2023, 4, 1), EndDate: date(2023, 4, 30)},
		Rows: []build_usage_report.Row{
			{
				BedspaceRef:  "Room 1",
				PropertyRef:  "Acacia House",
				Type:         build_usage_report.RowTypeBooking,
				StartDate:    date(2023, 4, 1),
				EndDate:      date(2023, 4, 4),
				DurationDays: 4,
				CRN:          ptr.Ptr("X320741"),
				Status:       &status,
			},
			{
				BedspaceRef:  "Room 1",
				PropertyRef:  "Acacia House",
				Type:         build_usage_report.RowTypeVoid,
				StartDate:    date(2023, 4, 5),
				EndDate:      date(2023, 4, 7),
				DurationDays: 3,
				VoidCategory: ptr.Ptr("Damage repair"),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteUsageReport(&buf, resp))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Usage")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two data rows")

	assert.Equal(t, "Property", rows[0][0])
	assert.Equal(t, "Acacia House", rows[1][0])
	assert.Equal(t, "booking", rows[1][2])
	assert.Equal(t, "2023-04-01", rows[1][3])
	assert.Equal(t, "4", rows[1][5])
	assert.Equal(t, "arrived", rows[1][7])
	assert.Equal(t, "void", rows[2][2])
	assert.Equal(t, "Damage repair", rows[2][8])
}

func TestWriteOccupancyReport(t *testing.T) {
	resp := &build_occupancy_report.Response{
		Window: domain.ReportingWindow{StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 29)},
		Rows: []build_occupancy_report.Row{
			{
				BedspaceRef:               "Room 1",
				PropertyRef:               "Acacia House",
				BedspaceStartDate:         date(2024, 2, 5),
				OnlineDays:                25,
				BookedDaysActiveAndClosed: 13,
				TotalBookedDays:           13,
				OccupancyRate:             0.52,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOccupancyReport(&buf, resp))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Occupancy")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Room 1", rows[1][1])
	assert.Equal(t, "2024-02-05", rows[1][2])
	assert.Equal(t, "25", rows[1][4])
	assert.Equal(t, "13", rows[1][10])
	assert.Equal(t, "0.52", rows[1][11])
}
