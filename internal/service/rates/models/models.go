package models

import (
	"time"

	"github.com/parkirc/parking-service/internal/domain"
)

// CreateScheduleRequest запрос на создание тарифной сетки.
// Все ставки в минорных единицах валюты
type CreateScheduleRequest struct {
	VehicleType   string     `json:"vehicleType"`
	BaseRate      int64      `json:"baseRate"`
	HourlyRate    int64      `json:"hourlyRate"`
	DailyRate     int64      `json:"dailyRate"`
	WeeklyRate    int64      `json:"weeklyRate"`
	MonthlyRate   int64      `json:"monthlyRate"`
	PenaltyRate   int64      `json:"penaltyRate"`
	IsActive      *bool      `json:"isActive,omitempty"` // по умолчанию сетка активна
	EffectiveFrom *time.Time `json:"effectiveFrom,omitempty"`
	EffectiveTo   *time.Time `json:"effectiveTo,omitempty"`
	CreatedBy     string     `json:"createdBy"`
}

// UpdateScheduleRequest запрос на обновление тарифной сетки
type UpdateScheduleRequest struct {
	VehicleType    *string    `json:"vehicleType,omitempty"`
	BaseRate       *int64     `json:"baseRate,omitempty"`
	HourlyRate     *int64     `json:"hourlyRate,omitempty"`
	DailyRate      *int64     `json:"dailyRate,omitempty"`
	WeeklyRate     *int64     `json:"weeklyRate,omitempty"`
	MonthlyRate    *int64     `json:"monthlyRate,omitempty"`
	PenaltyRate    *int64     `json:"penaltyRate,omitempty"`
	IsActive       *bool      `json:"isActive,omitempty"`
	EffectiveFrom  *time.Time `json:"effectiveFrom,omitempty"`
	EffectiveTo    *time.Time `json:"effectiveTo,omitempty"`
	LastModifiedBy string     `json:"lastModifiedBy"`
}

// ScheduleResponse модель тарифной сетки в ответе
type ScheduleResponse struct {
	ID             int64      `json:"id"`
	VehicleType    string     `json:"vehicleType"`
	BaseRate       int64      `json:"baseRate"`
	HourlyRate     int64      `json:"hourlyRate"`
	DailyRate      int64      `json:"dailyRate"`
	WeeklyRate     int64      `json:"weeklyRate"`
	MonthlyRate    int64      `json:"monthlyRate"`
	PenaltyRate    int64      `json:"penaltyRate"`
	IsActive       bool       `json:"isActive"`
	EffectiveFrom  time.Time  `json:"effectiveFrom"`
	EffectiveTo    *time.Time `json:"effectiveTo,omitempty"`
	CreatedBy      string     `json:"createdBy"`
	LastModifiedBy string     `json:"lastModifiedBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ScheduleListResponse список тарифных сеток
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

// FromDomainSchedule конвертирует доменную модель в модель ответа
func FromDomainSchedule(s *domain.RateSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:             s.ID,
		VehicleType:    s.VehicleType,
		BaseRate:       s.BaseRate,
		HourlyRate:     s.HourlyRate,
		DailyRate:      s.DailyRate,
		WeeklyRate:     s.WeeklyRate,
		MonthlyRate:    s.MonthlyRate,
		PenaltyRate:    s.PenaltyRate,
		IsActive:       s.IsActive,
		EffectiveFrom:  s.EffectiveFrom,
		EffectiveTo:    s.EffectiveTo,
		CreatedBy:      s.CreatedBy,
		LastModifiedBy: s.LastModifiedBy,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainSchedules конвертирует список доменных моделей в ответ
func FromDomainSchedules(schedules []*domain.RateSchedule) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
		Total:     len(schedules),
	}
	for _, s := range schedules {
		resp.Schedules = append(resp.Schedules, *FromDomainSchedule(s))
	}
	return resp
}
