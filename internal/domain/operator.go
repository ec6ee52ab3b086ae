package domain

import "time"

// Operator represents a gate operator
type Operator struct {
	ID          int64
	Name        string
	Email       string
	PhoneNumber *string
	BadgeNumber *string
	IsActive    bool
	JoinDate    time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
