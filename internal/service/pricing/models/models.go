package models

// Tier ступень тарифной сетки, примененная к стоянке
type Tier string

const (
	TierBase   Tier = "base"   // до 1 часа включительно
	TierHourly Tier = "hourly" // до суток включительно
	TierDaily  Tier = "daily"  // до недели включительно
	TierWeekly Tier = "weekly" // дольше недели
	TierFlat   Tier = "flat"   // плоская ставка места, сетка отсутствует
)

// FeeBreakdown результат расчета стоимости стоянки
type FeeBreakdown struct {
	BillableHours int64  // Оплачиваемые часы (округление вверх)
	Amount        int64  // Итоговая сумма (минорные единицы валюты)
	Tier          Tier   // Примененная ступень
	ScheduleID    *int64 // ID тарифной сетки (nil при плоской ставке)
}
