package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// Request модели

// CreateVoidRequest запрос на создание void-периода
type CreateVoidRequest struct {
	BedspaceID uuid.UUID `json:"bedspaceId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	ReasonID   uuid.UUID `json:"reasonId"`
	Notes      *string   `json:"notes,omitempty"`
	CostCentre *string   `json:"costCentre,omitempty"`
}

// Response модели

// BedspaceResponse ответ с данными койко-места
type BedspaceResponse struct {
	ID           uuid.UUID `json:"id"`
	Reference    string    `json:"reference"`
	PropertyID   uuid.UUID `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	Region       *string   `json:"region,omitempty"`
	OnlineFrom   string    `json:"onlineFrom"`            // "2023-04-01"
	OnlineUntil  *string   `json:"onlineUntil,omitempty"` // nil пока активно
}

// BedspaceListResponse ответ со списком койко-мест
type BedspaceListResponse struct {
	Bedspaces []BedspaceResponse `json:"bedspaces"`
}

// VoidResponse ответ с данными void-периода
type VoidResponse struct {
	ID          uuid.UUID `json:"id"`
	BedspaceID  uuid.UUID `json:"bedspaceId"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Reason      string    `json:"reason"`
	Notes       *string   `json:"notes,omitempty"`
	CostCentre  *string   `json:"costCentre,omitempty"`
	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBedspace конвертирует domain модель в DTO
func FromDomainBedspace(b *domain.Bedspace) *BedspaceResponse {
	if b == nil {
		return nil
	}

	resp := &BedspaceResponse{
		ID:           b.ID,
		Reference:    b.Reference,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		Region:       b.Region,
		OnlineFrom:   b.OnlineFrom.Format(domain.DateFormat),
	}

	if b.OnlineUntil != nil {
		until := b.OnlineUntil.Format(domain.DateFormat)
		resp.OnlineUntil = &until
	}

	return resp
}

// FromDomainBedspaceList конвертирует список domain моделей в DTO
func FromDomainBedspaceList(bedspaces []*domain.Bedspace) *BedspaceListResponse {
	resp := &BedspaceListResponse{
		Bedspaces: make([]BedspaceResponse, 0, len(bedspaces)),
	}

	for _, bedspace := range bedspaces {
		if bedspaceResp := FromDomainBedspace(bedspace); bedspaceResp != nil {
			resp.Bedspaces = append(resp.Bedspaces, *bedspaceResp)
		}
	}

	return resp
}

// FromDomainVoid конвертирует domain модель в DTO
func FromDomainVoid(v *domain.Void) *VoidResponse {
	if v == nil {
		return nil
	}

	resp := &VoidResponse{
		ID:         v.ID,
		BedspaceID: v.BedspaceID,
		StartDate:  v.StartDate.Format(domain.DateFormat),
		EndDate:    v.EndDate.Format(domain.DateFormat),
		Reason:     v.Reason.Name,
		Notes:      v.Notes,
		CostCentre: v.CostCentre,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}

	if v.CancelledAt != nil {
		cancelledStr := v.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
