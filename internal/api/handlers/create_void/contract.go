package create_void

import (
	"context"

	"github.com/avdema/TA-ReportingService/internal/service/bedspaces/models"
)

type BedspacesService interface {
	CreateVoid(ctx context.Context, req *models.CreateVoidRequest) (*models.VoidResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
