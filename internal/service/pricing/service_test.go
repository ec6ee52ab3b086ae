package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/service/pricing/models"
)

func testSchedule() *domain.RateSchedule {
	return &domain.RateSchedule{
		ID:         42,
		BaseRate:   5000,
		HourlyRate: 2000,
		DailyRate:  50000,
		WeeklyRate: 300000,
	}
}

func TestBillableHours(t *testing.T) {
	svc := NewService()
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		exit     time.Time
		expected int64
	}{
		{"zero duration", entry, 0},
		{"one second", entry.Add(time.Second), 1},
		{"exactly one hour", entry.Add(time.Hour), 1},
		{"one hour one second", entry.Add(time.Hour + time.Second), 2},
		{"exactly 24 hours", entry.Add(24 * time.Hour), 24},
		{"24 hours one second", entry.Add(24*time.Hour + time.Second), 25},
		{"exactly one week", entry.Add(168 * time.Hour), 168},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := svc.BillableHours(entry, tt.exit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hours)
		})
	}
}

func TestBillableHours_ExitBeforeEntry(t *testing.T) {
	svc := NewService()
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	_, err := svc.BillableHours(entry, entry.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCalculate_Tiers(t *testing.T) {
	svc := NewService()
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		exit           time.Time
		expectedAmount int64
		expectedTier   models.Tier
	}{
		{"zero duration charges base", entry, 5000, models.TierBase},
		{"30 minutes", entry.Add(30 * time.Minute), 5000, models.TierBase},
		{"exactly one hour", entry.Add(time.Hour), 5000, models.TierBase},
		{"one hour one second", entry.Add(time.Hour + time.Second), 7000, models.TierHourly},
		{"five hours", entry.Add(5 * time.Hour), 5000 + 2000*4, models.TierHourly},
		{"exactly 24 hours", entry.Add(24 * time.Hour), 5000 + 2000*23, models.TierHourly},
		{"24 hours one second", entry.Add(24*time.Hour + time.Second), 50000 * 2, models.TierDaily},
		{"three days", entry.Add(72 * time.Hour), 50000 * 3, models.TierDaily},
		{"exactly one week", entry.Add(168 * time.Hour), 50000 * 7, models.TierDaily},
		{"one week one hour", entry.Add(169 * time.Hour), 300000 * 2, models.TierWeekly},
		{"two weeks", entry.Add(336 * time.Hour), 300000 * 2, models.TierWeekly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := svc.Calculate(testSchedule(), 0, entry, tt.exit)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAmount, breakdown.Amount)
			assert.Equal(t, tt.expectedTier, breakdown.Tier)
			require.NotNil(t, breakdown.ScheduleID)
			assert.Equal(t, int64(42), *breakdown.ScheduleID)
		})
	}
}

func TestCalculate_FlatRateWithoutSchedule(t *testing.T) {
	svc := NewService()
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// Без сетки минимум один час оплачивается всегда
	breakdown, err := svc.Calculate(nil, 1500, entry, entry)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), breakdown.Amount)
	assert.Equal(t, models.TierFlat, breakdown.Tier)
	assert.Nil(t, breakdown.ScheduleID)

	breakdown, err = svc.Calculate(nil, 1500, entry, entry.Add(3*time.Hour+time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1500*4), breakdown.Amount)
	assert.Equal(t, int64(4), breakdown.BillableHours)
}

func TestCalculate_ExitBeforeEntry(t *testing.T) {
	svc := NewService()
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	_, err := svc.Calculate(testSchedule(), 0, entry, entry.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCalculate_AmountNeverDecreases(t *testing.T) {
	svc := NewService()
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// Стоимость не убывает с ростом длительности, включая границы ступеней
	var prev int64
	for h := int64(1); h <= 340; h++ {
		breakdown, err := svc.Calculate(testSchedule(), 0, entry, entry.Add(time.Duration(h)*time.Hour))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, breakdown.Amount, prev, "hours=%d", h)
		prev = breakdown.Amount
	}
}
