package pricing

import (
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/service/pricing/models"
)

// Service сервис расчета стоимости стоянки
type Service struct{}

// NewService создает новый экземпляр сервиса расчета стоимости
func NewService() *Service {
	return &Service{}
}

// BillableHours вычисляет оплачиваемые часы стоянки: длительность,
// округленная вверх до целого часа. Нулевая длительность дает 0 часов.
// Возвращает ErrInvalidInterval, если выезд раньше въезда
func (s *Service) BillableHours(entryTime, exitTime time.Time) (int64, error) {
	if exitTime.Before(entryTime) {
		return 0, ErrInvalidInterval
	}

	duration := exitTime.Sub(entryTime)
	hours := int64(duration / time.Hour)
	if duration%time.Hour != 0 {
		hours++
	}

	return hours, nil
}

// Calculate вычисляет стоимость стоянки за интервал [entryTime, exitTime].
// При наличии тарифной сетки применяется ступенчатый расчет:
//   - до 1 часа включительно - базовая ставка (нулевая длительность тоже)
//   - до суток включительно - база за первый час плюс почасовая за остальные
//   - до недели включительно - посуточная ставка за каждые начатые сутки
//   - дольше недели - понедельная ставка за каждую начатую неделю
//
// Без сетки (schedule == nil) применяется плоская почасовая ставка места,
// минимум один час оплачивается всегда
func (s *Service) Calculate(
	schedule *domain.RateSchedule,
	fallbackHourlyRate int64,
	entryTime, exitTime time.Time,
) (*models.FeeBreakdown, error) {
	hours, err := s.BillableHours(entryTime, exitTime)
	if err != nil {
		return nil, err
	}

	if schedule == nil {
		flatHours := hours
		if flatHours < 1 {
			flatHours = 1
		}
		return &models.FeeBreakdown{
			BillableHours: hours,
			Amount:        fallbackHourlyRate * flatHours,
			Tier:          models.TierFlat,
		}, nil
	}

	breakdown := &models.FeeBreakdown{
		BillableHours: hours,
		ScheduleID:    &schedule.ID,
	}

	switch {
	case hours <= 1:
		breakdown.Tier = models.TierBase
		breakdown.Amount = schedule.BaseRate
	case hours <= domain.HoursPerDay:
		breakdown.Tier = models.TierHourly
		breakdown.Amount = schedule.BaseRate + schedule.HourlyRate*(hours-1)
	case hours <= domain.HoursPerWeek:
		breakdown.Tier = models.TierDaily
		breakdown.Amount = schedule.DailyRate * ceilDiv(hours, domain.HoursPerDay)
	default:
		breakdown.Tier = models.TierWeekly
		breakdown.Amount = schedule.WeeklyRate * ceilDiv(hours, domain.HoursPerWeek)
	}

	return breakdown, nil
}

// ceilDiv целочисленное деление с округлением вверх
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
