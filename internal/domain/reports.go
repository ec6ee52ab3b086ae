package domain

import "time"

// Report result records. Each report has a fixed, explicitly typed row
// shape instead of ad-hoc projections.

// RevenueByMethod is one row of the daily revenue report
type RevenueByMethod struct {
	PaymentMethod string
	Transactions  int64
	Amount        int64
}

// OccupancyByDay is one row of the occupancy report
type OccupancyByDay struct {
	Date     time.Time
	Entries  int64
	Revenue  int64
	AvgHours float64
}

// VehicleTypeStat is one row of the vehicle type statistics report
type VehicleTypeStat struct {
	VehicleType string
	Count       int64
	Revenue     int64
}

// HourCount is one bucket of the peak hour analysis
type HourCount struct {
	Hour    int // 0-23
	Entries int64
}
