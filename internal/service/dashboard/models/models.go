package models

import "time"

// VehicleTypeCount количество припаркованных машин категории
type VehicleTypeCount struct {
	VehicleType string `json:"vehicleType"`
	Count       int64  `json:"count"`
}

// HourEntries количество въездов за час суток
type HourEntries struct {
	Hour    int   `json:"hour"` // 0..23
	Entries int64 `json:"entries"`
}

// RecentTransaction краткая запись о недавней операции
type RecentTransaction struct {
	TicketNumber string     `json:"ticketNumber"`
	PlateNumber  string     `json:"plateNumber"`
	VehicleType  string     `json:"vehicleType"`
	SpaceNumber  string     `json:"spaceNumber"`
	EntryTime    time.Time  `json:"entryTime"`
	ExitTime     *time.Time `json:"exitTime,omitempty"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
}

// Snapshot сводка состояния парковки на текущий момент
type Snapshot struct {
	GeneratedAt time.Time `json:"generatedAt"`

	TotalSpaces    int64   `json:"totalSpaces"`
	OccupiedSpaces int64   `json:"occupiedSpaces"`
	FreeSpaces     int64   `json:"freeSpaces"`
	OccupancyRate  float64 `json:"occupancyRate"` // 0..1, 0 при отсутствии мест

	TodayRevenue int64 `json:"todayRevenue"` // оплаты за сегодня, минорные единицы
	TodayEntries int64 `json:"todayEntries"` // въезды за сегодня

	ParkedByType  []VehicleTypeCount  `json:"parkedByType"`
	EntriesByHour []HourEntries       `json:"entriesByHour"`
	Recent        []RecentTransaction `json:"recent"`
}
