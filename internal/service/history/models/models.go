package models

import (
	"time"

	"github.com/parkirc/parking-service/internal/domain"
)

// ListRequest запрос на получение истории парковок
type ListRequest struct {
	Plate       *string    `json:"plate,omitempty"`       // Подстрока госномера
	VehicleType *string    `json:"vehicleType,omitempty"` // Категория транспорта
	Status      *string    `json:"status,omitempty"`      // "active" или "completed"
	StartDate   *time.Time `json:"startDate,omitempty"`   // Въезд не раньше
	EndDate     *time.Time `json:"endDate,omitempty"`     // Въезд не позже
	Limit       int        `json:"limit,omitempty"`       // 0 = без ограничения
}

// TransactionResponse модель парковочной транзакции в ответе
type TransactionResponse struct {
	ID                int64      `json:"id"`
	TransactionNumber string     `json:"transactionNumber"`
	TicketNumber      string     `json:"ticketNumber"`
	PlateNumber       string     `json:"plateNumber"`
	VehicleType       string     `json:"vehicleType"`
	SpaceNumber       string     `json:"spaceNumber"`
	EntryTime         time.Time  `json:"entryTime"`
	ExitTime          *time.Time `json:"exitTime,omitempty"`
	HourlyRate        int64      `json:"hourlyRate"`
	Amount            int64      `json:"amount"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"paymentStatus"`
	PaymentMethod     *string    `json:"paymentMethod,omitempty"`
	PaymentTime       *time.Time `json:"paymentTime,omitempty"`
}

// ListResponse список парковочных транзакций
type ListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// FromDomainTransaction конвертирует доменную модель в модель ответа
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		TicketNumber:      t.TicketNumber,
		PlateNumber:       t.PlateNumber,
		VehicleType:       t.VehicleType,
		SpaceNumber:       t.SpaceNumber,
		EntryTime:         t.EntryTime,
		ExitTime:          t.ExitTime,
		HourlyRate:        t.HourlyRate,
		Amount:            t.Amount,
		Status:            string(t.Status),
		PaymentStatus:     string(t.PaymentStatus),
		PaymentMethod:     t.PaymentMethod,
		PaymentTime:       t.PaymentTime,
	}
}

// FromDomainTransactions конвертирует список доменных моделей в ответ
func FromDomainTransactions(transactions []*domain.Transaction) *ListResponse {
	resp := &ListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
		Total:        len(transactions),
	}
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, *FromDomainTransaction(t))
	}
	return resp
}
