package domain

import "time"

// TransactionStatus represents the lifecycle state of a parking transaction
type TransactionStatus string

const (
	TransactionActive    TransactionStatus = "active"
	TransactionCompleted TransactionStatus = "completed"
)

// PaymentStatus represents the payment state of a parking transaction
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Transaction represents one parking stay from gate entry to gate exit
type Transaction struct {
	ID                int64
	TransactionNumber string
	TicketNumber      string
	VehicleID         int64
	SpaceID           int64
	ShiftID           *int64

	EntryTime time.Time
	ExitTime  *time.Time

	HourlyRate int64 // snapshot of the space's fallback rate at entry
	Amount     int64 // final fee, 0 while the stay is open

	Status        TransactionStatus
	PaymentStatus PaymentStatus
	PaymentMethod *string
	PaymentTime   *time.Time

	// Denormalized data for history
	PlateNumber string
	VehicleType string
	SpaceNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true while the vehicle is still parked
func (t *Transaction) IsOpen() bool {
	return t.Status == TransactionActive
}

// TransactionFilter defines optional filters for transaction history queries
type TransactionFilter struct {
	Plate       *string            // substring match on plate number
	VehicleType *string            // filter by category tag
	Status      *TransactionStatus // filter by lifecycle state
	StartDate   *time.Time         // entry time >= StartDate
	EndDate     *time.Time         // entry time <= EndDate
	Limit       int                // 0 = no limit
}
