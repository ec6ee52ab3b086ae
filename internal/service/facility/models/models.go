package models

import (
	"time"

	"github.com/parkirc/parking-service/internal/domain"
)

// CreateSpaceRequest запрос на создание парковочного места
type CreateSpaceRequest struct {
	SpaceNumber string `json:"spaceNumber"`
	SpaceType   string `json:"spaceType"`
	HourlyRate  int64  `json:"hourlyRate"`
	IsActive    *bool  `json:"isActive,omitempty"` // по умолчанию место активно
}

// UpdateSpaceRequest запрос на обновление парковочного места
type UpdateSpaceRequest struct {
	SpaceNumber *string `json:"spaceNumber,omitempty"`
	SpaceType   *string `json:"spaceType,omitempty"`
	HourlyRate  *int64  `json:"hourlyRate,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ListSpacesRequest запрос на получение списка мест
type ListSpacesRequest struct {
	SpaceType *string `json:"spaceType,omitempty"`
	FreeOnly  bool    `json:"freeOnly,omitempty"`
}

// SpaceResponse модель парковочного места в ответе
type SpaceResponse struct {
	ID               int64      `json:"id"`
	SpaceNumber      string     `json:"spaceNumber"`
	SpaceType        string     `json:"spaceType"`
	IsActive         bool       `json:"isActive"`
	IsOccupied       bool       `json:"isOccupied"`
	LastOccupiedTime *time.Time `json:"lastOccupiedTime,omitempty"`
	HourlyRate       int64      `json:"hourlyRate"`
	CurrentVehicleID *int64     `json:"currentVehicleId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// SpaceListResponse список парковочных мест
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
	Total  int             `json:"total"`
}

// FromDomainSpace конвертирует доменную модель в модель ответа
func FromDomainSpace(s *domain.ParkingSpace) *SpaceResponse {
	return &SpaceResponse{
		ID:               s.ID,
		SpaceNumber:      s.SpaceNumber,
		SpaceType:        s.SpaceType,
		IsActive:         s.IsActive,
		IsOccupied:       s.IsOccupied,
		LastOccupiedTime: s.LastOccupiedTime,
		HourlyRate:       s.HourlyRate,
		CurrentVehicleID: s.CurrentVehicleID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// FromDomainSpaces конвертирует список доменных моделей в ответ
func FromDomainSpaces(spaces []*domain.ParkingSpace) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
		Total:  len(spaces),
	}
	for _, s := range spaces {
		resp.Spaces = append(resp.Spaces, *FromDomainSpace(s))
	}
	return resp
}
