package domain

import (
	"strings"
	"time"
)

// RateSchedule represents the tiered pricing configuration for one
// vehicle category. All amounts are in minor currency units.
//
// MonthlyRate and PenaltyRate are stored and editable but are not read
// by any fee computation path.
type RateSchedule struct {
	ID          int64
	VehicleType string
	BaseRate    int64 // covers the first hour (and any stay up to 1h)
	HourlyRate  int64 // each additional hour up to 24h
	DailyRate   int64 // per started day for stays of 1-7 days
	WeeklyRate  int64 // per started week beyond 7 days
	MonthlyRate int64
	PenaltyRate int64
	IsActive    bool

	EffectiveFrom time.Time
	EffectiveTo   *time.Time // nil = open-ended

	CreatedBy      string
	LastModifiedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo reports whether the schedule covers the given category tag
func (r *RateSchedule) AppliesTo(vehicleType string) bool {
	return strings.EqualFold(r.VehicleType, vehicleType)
}

// IsEffectiveAt returns true if the schedule is active and its effective
// range contains the given instant
func (r *RateSchedule) IsEffectiveAt(t time.Time) bool {
	if !r.IsActive {
		return false
	}
	if t.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && t.After(*r.EffectiveTo) {
		return false
	}
	return true
}
