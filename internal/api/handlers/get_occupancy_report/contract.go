package get_occupancy_report

import (
	"context"

	"github.com/avdema/TA-ReportingService/internal/domain"
	buildOccupancyReport "github.com/avdema/TA-ReportingService/internal/usecase/build_occupancy_report"
)

type OccupancyReportUseCase interface {
	Execute(ctx context.Context, req *buildOccupancyReport.Request) (*buildOccupancyReport.Response, error)
}

// BedspaceLister поставляет койко-места, по которым строится отчет
type BedspaceLister interface {
	List(ctx context.Context, region *string) ([]*domain.Bedspace, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
