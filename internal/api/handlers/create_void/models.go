package create_void

import (
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/internal/service/bedspaces/models"
)

// CreateVoidRequest HTTP request model
type CreateVoidRequest struct {
	StartDate  string  `json:"startDate"` // "2023-04-05"
	EndDate    string  `json:"endDate"`   // "2023-04-07"
	ReasonID   string  `json:"reasonId"`
	Notes      *string `json:"notes,omitempty"`
	CostCentre *string `json:"costCentre,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVoidRequest) ToServiceRequest(bedspaceID uuid.UUID) (*models.CreateVoidRequest, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	reasonID, err := uuid.Parse(r.ReasonID)
	if err != nil {
		return nil, err
	}

	return &models.CreateVoidRequest{
		BedspaceID: bedspaceID,
		StartDate:  start,
		EndDate:    end,
		ReasonID:   reasonID,
		Notes:      r.Notes,
		CostCentre: r.CostCentre,
	}, nil
}
