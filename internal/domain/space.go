package domain

import (
	"strings"
	"time"
)

// ParkingSpace represents a single physical parking space in the facility
type ParkingSpace struct {
	ID               int64
	SpaceNumber      string
	SpaceType        string // category tag: "car", "motorcycle", "truck", ...
	IsActive         bool
	IsOccupied       bool
	LastOccupiedTime *time.Time // nil = never occupied
	HourlyRate       int64      // fallback flat rate in minor currency units
	CurrentVehicleID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the space is active and not occupied
func (s *ParkingSpace) IsFree() bool {
	return s.IsActive && !s.IsOccupied
}

// MatchesType reports whether the space serves the given vehicle category.
// Category tags are compared case-insensitively.
func (s *ParkingSpace) MatchesType(vehicleType string) bool {
	return strings.EqualFold(s.SpaceType, vehicleType)
}

// SpaceFilter defines optional filters for listing parking spaces
type SpaceFilter struct {
	SpaceType *string // filter by category tag (optional)
	FreeOnly  bool    // only active, unoccupied spaces
}
