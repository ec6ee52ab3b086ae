package process_exit

import "time"

// Request модель запроса на оформление выезда
type Request struct {
	PlateNumber   string // Госномер транспортного средства
	PaymentMethod string // Способ оплаты ("cash", "card", ...)
	OperatorID    int64  // ID оператора, оформившего выезд
}

// Response модель ответа с оформленным выездом
type Response struct {
	TransactionID     int64     // ID парковочной транзакции
	TransactionNumber string    // Номер транзакции
	TicketNumber      string    // Номер въездного талона
	PlateNumber       string    // Госномер
	VehicleType       string    // Категория транспорта
	SpaceNumber       string    // Освобожденное место

	EntryTime     time.Time // Время въезда
	ExitTime      time.Time // Время выезда
	BillableHours int64     // Оплачиваемые часы (округление вверх)
	Amount        int64     // Итоговая сумма (минорные единицы валюты)
	PaymentMethod string    // Способ оплаты
}
