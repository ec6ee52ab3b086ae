package models

import (
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/pkg/types"
)

// Shift модели

// CreateShiftRequest запрос на создание смены
type CreateShiftRequest struct {
	Name      string           `json:"name"`
	StartTime types.TimeString `json:"startTime"` // "HH:MM"
	EndTime   types.TimeString `json:"endTime"`   // "HH:MM", может быть меньше startTime (смена через полночь)
	IsActive  *bool            `json:"isActive,omitempty"`
}

// UpdateShiftRequest запрос на обновление смены
type UpdateShiftRequest struct {
	Name      *string           `json:"name,omitempty"`
	StartTime *types.TimeString `json:"startTime,omitempty"`
	EndTime   *types.TimeString `json:"endTime,omitempty"`
	IsActive  *bool             `json:"isActive,omitempty"`
}

// ShiftResponse модель смены в ответе
type ShiftResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ShiftListResponse список смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

// Operator модели

// CreateOperatorRequest запрос на создание оператора
type CreateOperatorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	BadgeNumber *string `json:"badgeNumber,omitempty"`
}

// UpdateOperatorRequest запрос на обновление оператора
type UpdateOperatorRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	BadgeNumber *string `json:"badgeNumber,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// OperatorResponse модель оператора в ответе
type OperatorResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	BadgeNumber *string   `json:"badgeNumber,omitempty"`
	IsActive    bool      `json:"isActive"`
	JoinDate    time.Time `json:"joinDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OperatorListResponse список операторов
type OperatorListResponse struct {
	Operators []OperatorResponse `json:"operators"`
	Total     int                `json:"total"`
}

// FromDomainShift конвертирует доменную модель смены в модель ответа
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainShifts конвертирует список смен в ответ
func FromDomainShifts(shifts []*domain.Shift) *ShiftListResponse {
	resp := &ShiftListResponse{
		Shifts: make([]ShiftResponse, 0, len(shifts)),
		Total:  len(shifts),
	}
	for _, s := range shifts {
		resp.Shifts = append(resp.Shifts, *FromDomainShift(s))
	}
	return resp
}

// FromDomainOperator конвертирует доменную модель оператора в модель ответа
func FromDomainOperator(o *domain.Operator) *OperatorResponse {
	return &OperatorResponse{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		PhoneNumber: o.PhoneNumber,
		BadgeNumber: o.BadgeNumber,
		IsActive:    o.IsActive,
		JoinDate:    o.JoinDate,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// FromDomainOperators конвертирует список операторов в ответ
func FromDomainOperators(operators []*domain.Operator) *OperatorListResponse {
	resp := &OperatorListResponse{
		Operators: make([]OperatorResponse, 0, len(operators)),
		Total:     len(operators),
	}
	for _, o := range operators {
		resp.Operators = append(resp.Operators, *FromDomainOperator(o))
	}
	return resp
}
