package get_bedspaces

import (
	"context"

	"github.com/avdema/TA-ReportingService/internal/service/bedspaces/models"
)

type BedspacesService interface {
	List(ctx context.Context, region *string) (*models.BedspaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
