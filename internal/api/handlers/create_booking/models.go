package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BedspaceID    string  `json:"bedspaceId"`
	CRN           *string `json:"crn,omitempty"`
	ArrivalDate   string  `json:"arrivalDate"`   // "2023-04-01"
	DepartureDate string  `json:"departureDate"` // "2023-04-30"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest() (*models.CreateBookingRequest, error) {
	bedspaceID, err := uuid.Parse(r.BedspaceID)
	if err != nil {
		return nil, err
	}

	arrival, err := time.Parse(domain.DateFormat, r.ArrivalDate)
	if err != nil {
		return nil, err
	}

	departure, err := time.Parse(domain.DateFormat, r.DepartureDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateBookingRequest{
		BedspaceID:    bedspaceID,
		CRN:           r.CRN,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	}, nil
}
