package gateservice

import "time"

// GateCommand команда контроллеру шлагбаума
type GateCommand struct {
	Gate        string `json:"gate"` // "entry" или "exit"
	PlateNumber string `json:"plate_number"`
}

// TicketPrintJob задание на печать въездного талона
type TicketPrintJob struct {
	TicketNumber string    `json:"ticket_number"`
	PlateNumber  string    `json:"plate_number"`
	VehicleType  string    `json:"vehicle_type"`
	SpaceNumber  string    `json:"space_number"`
	EntryTime    time.Time `json:"entry_time"`
}

// ReceiptPrintJob задание на печать квитанции об оплате
type ReceiptPrintJob struct {
	TicketNumber  string    `json:"ticket_number"`
	PlateNumber   string    `json:"plate_number"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
}

// ErrorResponse модель ошибки от контроллера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
