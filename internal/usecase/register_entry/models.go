package register_entry

import "time"

// Request модель запроса на регистрацию въезда
type Request struct {
	PlateNumber string  // Госномер транспортного средства
	VehicleType string  // Категория транспорта ("car", "motorcycle", "truck", ...)
	DriverName  *string // Имя водителя (опционально)
	PhoneNumber *string // Телефон водителя (опционально)
	OperatorID  int64   // ID оператора, оформившего въезд
}

// Response модель ответа с оформленным въездом
type Response struct {
	TransactionID     int64     // ID парковочной транзакции
	TransactionNumber string    // Номер транзакции
	TicketNumber      string    // Номер въездного талона
	PlateNumber       string    // Госномер (нормализованный)
	VehicleType       string    // Категория транспорта
	SpaceID           int64     // ID выделенного места
	SpaceNumber       string    // Номер выделенного места
	EntryTime         time.Time // Время въезда
	HourlyRate        int64     // Базовый тариф места (минорные единицы валюты)

	ShiftID   *int64  // ID смены, если въезд попал в активную смену
	ShiftName *string // Название смены
}
