package process_exit

import (
	"time"

	processExit "github.com/parkirc/parking-service/internal/usecase/process_exit"
)

// ProcessExitRequest HTTP request model
type ProcessExitRequest struct {
	PlateNumber   string `json:"plateNumber"`
	PaymentMethod string `json:"paymentMethod"` // "cash" или "card"
}

// ExitResponse HTTP response model
type ExitResponse struct {
	TransactionID     int64  `json:"transactionId"`
	TransactionNumber string `json:"transactionNumber"`
	TicketNumber      string `json:"ticketNumber"`
	PlateNumber       string `json:"plateNumber"`
	VehicleType       string `json:"vehicleType"`
	SpaceNumber       string `json:"spaceNumber"`
	EntryTime         string `json:"entryTime"`
	ExitTime          string `json:"exitTime"`
	BillableHours     int64  `json:"billableHours"`
	Amount            int64  `json:"amount"`
	PaymentMethod     string `json:"paymentMethod"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProcessExitRequest) ToUseCaseRequest(operatorID int64) *processExit.Request {
	return &processExit.Request{
		PlateNumber:   r.PlateNumber,
		PaymentMethod: r.PaymentMethod,
		OperatorID:    operatorID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processExit.Response) *ExitResponse {
	return &ExitResponse{
		TransactionID:     resp.TransactionID,
		TransactionNumber: resp.TransactionNumber,
		TicketNumber:      resp.TicketNumber,
		PlateNumber:       resp.PlateNumber,
		VehicleType:       resp.VehicleType,
		SpaceNumber:       resp.SpaceNumber,
		EntryTime:         resp.EntryTime.Format(time.RFC3339),
		ExitTime:          resp.ExitTime.Format(time.RFC3339),
		BillableHours:     resp.BillableHours,
		Amount:            resp.Amount,
		PaymentMethod:     resp.PaymentMethod,
	}
}
