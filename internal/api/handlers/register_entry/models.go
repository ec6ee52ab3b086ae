package register_entry

import (
	"time"

	registerEntry "github.com/parkirc/parking-service/internal/usecase/register_entry"
)

// RegisterEntryRequest HTTP request model
type RegisterEntryRequest struct {
	PlateNumber string  `json:"plateNumber"`
	VehicleType string  `json:"vehicleType"`
	DriverName  *string `json:"driverName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// EntryResponse HTTP response model
type EntryResponse struct {
	TransactionID     int64   `json:"transactionId"`
	TransactionNumber string  `json:"transactionNumber"`
	TicketNumber      string  `json:"ticketNumber"`
	PlateNumber       string  `json:"plateNumber"`
	VehicleType       string  `json:"vehicleType"`
	SpaceID           int64   `json:"spaceId"`
	SpaceNumber       string  `json:"spaceNumber"`
	EntryTime         string  `json:"entryTime"`
	HourlyRate        int64   `json:"hourlyRate"`
	ShiftID           *int64  `json:"shiftId,omitempty"`
	ShiftName         *string `json:"shiftName,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterEntryRequest) ToUseCaseRequest(operatorID int64) *registerEntry.Request {
	return &registerEntry.Request{
		PlateNumber: r.PlateNumber,
		VehicleType: r.VehicleType,
		DriverName:  r.DriverName,
		PhoneNumber: r.PhoneNumber,
		OperatorID:  operatorID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerEntry.Response) *EntryResponse {
	return &EntryResponse{
		TransactionID:     resp.TransactionID,
		TransactionNumber: resp.TransactionNumber,
		TicketNumber:      resp.TicketNumber,
		PlateNumber:       resp.PlateNumber,
		VehicleType:       resp.VehicleType,
		SpaceID:           resp.SpaceID,
		SpaceNumber:       resp.SpaceNumber,
		EntryTime:         resp.EntryTime.Format(time.RFC3339),
		HourlyRate:        resp.HourlyRate,
		ShiftID:           resp.ShiftID,
		ShiftName:         resp.ShiftName,
	}
}
