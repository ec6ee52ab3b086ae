package get_fee_quote

import "time"

// Request модель запроса на предварительный расчет стоимости
type Request struct {
	PlateNumber string // Госномер транспортного средства
}

// Response модель ответа с предварительным расчетом.
// Стоимость указана на момент запроса - при фактическом выезде она может вырасти
type Response struct {
	TicketNumber  string    // Номер въездного талона
	PlateNumber   string    // Госномер
	VehicleType   string    // Категория транспорта
	SpaceNumber   string    // Занимаемое место
	EntryTime     time.Time // Время въезда
	QuotedAt      time.Time // Момент расчета
	BillableHours int64     // Оплачиваемые часы на момент расчета
	Amount        int64     // Сумма к оплате на момент расчета (минорные единицы валюты)
	Tier          string    // Примененная ступень тарифа
}
