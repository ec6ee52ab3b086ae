package domain

import "time"

// Vehicle represents a vehicle known to the facility.
// A vehicle row is created on entry; IsParked flips on exit and the same
// plate may re-enter later as a new row.
type Vehicle struct {
	ID          int64
	PlateNumber string
	VehicleType string
	DriverName  *string
	PhoneNumber *string
	EntryTime   time.Time
	ExitTime    *time.Time
	SpaceID     *int64 // assigned space while parked
	ShiftID     *int64 // shift that processed the entry
	IsParked    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLeft returns true if the vehicle has already exited
func (v *Vehicle) HasLeft() bool {
	return !v.IsParked && v.ExitTime != nil
}
