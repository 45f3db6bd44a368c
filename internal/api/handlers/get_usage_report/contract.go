package get_usage_report

import (
	"context"

	"github.com/avdema/TA-ReportingService/internal/domain"
	buildUsageReport "github.com/avdema/TA-ReportingService/internal/usecase/build_usage_report"
)

type UsageReportUseCase interface {
	Execute(ctx context.Context, req *buildUsageReport.Request) (*buildUsageReport.Response, error)
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
