package models

import "time"

// Period отчетный период [Start, End)
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RevenueRow строка отчета по выручке
type RevenueRow struct {
	PaymentMethod string `json:"paymentMethod"`
	Transactions  int64  `json:"transactions"`
	Amount        int64  `json:"amount"`
}

// RevenueReport отчет по выручке за период
type RevenueReport struct {
	Period Period       `json:"period"`
	Rows   []RevenueRow `json:"rows"`
	Total  int64        `json:"total"`
}

// OccupancyRow строка отчета по загрузке за день
type OccupancyRow struct {
	Date     time.Time `json:"date"`
	Entries  int64     `json:"entries"`
	Revenue  int64     `json:"revenue"`
	AvgHours float64   `json:"avgHours"`
}

// OccupancyReport отчет по загрузке за период
type OccupancyReport struct {
	Period Period         `json:"period"`
	Rows   []OccupancyRow `json:"rows"`
}

// VehicleTypeRow строка отчета по категориям транспорта
type VehicleTypeRow struct {
	VehicleType string `json:"vehicleType"`
	Count       int64  `json:"count"`
	Revenue     int64  `json:"revenue"`
}

// VehicleTypeReport отчет по категориям транспорта за период
type VehicleTypeReport struct {
	Period Period           `json:"period"`
	Rows   []VehicleTypeRow `json:"rows"`
}

// PeakHourRow строка анализа пиковых часов
type PeakHourRow struct {
	Hour    int   `json:"hour"` // 0..23
	Entries int64 `json:"entries"`
}

// PeakHoursReport анализ пиковых часов за период
type PeakHoursReport struct {
	Period   Period        `json:"period"`
	Rows     []PeakHourRow `json:"rows"`
	PeakHour *int          `json:"peakHour,omitempty"` // nil, если въездов не было
}
