package get_fee_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkirc/parking-service/internal/domain"
	transactionRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
	"github.com/parkirc/parking-service/internal/service/pricing"
	"github.com/parkirc/parking-service/internal/service/pricing/models"
)

// --- стабы зависимостей ---

type stubVehicleRepo struct {
	parked *domain.Vehicle
}

func (s *stubVehicleRepo) GetParkedByPlate(_ context.Context, _ string) (*domain.Vehicle, error) {
	if s.parked == nil {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return s.parked, nil
}

type stubTxnRepo struct {
	open *domain.Transaction
}

func (s *stubTxnRepo) GetOpenByVehicleID(_ context.Context, _ int64) (*domain.Transaction, error) {
	if s.open == nil {
		return nil, transactionRepo.ErrTransactionNotFound
	}
	return s.open, nil
}

type stubRateRepo struct {
	schedules []*domain.RateSchedule
}

func (s *stubRateRepo) ListEffective(_ context.Context, _ string, _ time.Time) ([]*domain.RateSchedule, error) {
	return s.schedules, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- окружение теста ---

type testEnv struct {
	uc       *UseCase
	vehicles *stubVehicleRepo
	txns     *stubTxnRepo
	rates    *stubRateRepo
	now      time.Time
	entry    time.Time
}

func newTestEnv() *testEnv {
	entry := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	now := entry.Add(3*time.Hour + 20*time.Minute) // 4 оплачиваемых часа

	env := &testEnv{
		vehicles: &stubVehicleRepo{
			parked: &domain.Vehicle{ID: 100, PlateNumber: "A 123 BC", IsParked: true},
		},
		txns: &stubTxnRepo{
			open: &domain.Transaction{
				ID:           200,
				TicketNumber: "TKT-20250602-AAAAAAAA",
				VehicleID:    100,
				SpaceID:      1,
				EntryTime:    entry,
				HourlyRate:   1500,
				Status:       domain.TransactionActive,
				PlateNumber:  "A 123 BC",
				VehicleType:  "car",
				SpaceNumber:  "A-01",
			},
		},
		rates: &stubRateRepo{},
		now:   now,
		entry: entry,
	}

	env.uc = NewUseCase(
		env.vehicles,
		env.txns,
		env.rates,
		pricing.NewService(),
		noopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: now}

	return env
}

// --- тесты ---

func TestExecute_FlatRateWithoutSchedule(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{PlateNumber: "a 123 bc"})
	require.NoError(t, err)

	assert.Equal(t, "A 123 BC", resp.PlateNumber)
	assert.Equal(t, "TKT-20250602-AAAAAAAA", resp.TicketNumber)
	assert.Equal(t, "car", resp.VehicleType)
	assert.Equal(t, "A-01", resp.SpaceNumber)
	assert.Equal(t, env.entry, resp.EntryTime)
	assert.Equal(t, env.now, resp.QuotedAt)
	assert.Equal(t, int64(4), resp.BillableHours)
	assert.Equal(t, int64(4*1500), resp.Amount)
	assert.Equal(t, string(models.TierFlat), resp.Tier)
}

func TestExecute_TieredSchedule(t *testing.T) {
	env := newTestEnv()
	env.rates.schedules = []*domain.RateSchedule{
		{
			ID:          42,
			VehicleType: "car",
			BaseRate:    5000,
			HourlyRate:  2000,
			DailyRate:   50000,
			WeeklyRate:  300000,
			IsActive:    true,
		},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{PlateNumber: "A 123 BC"})
	require.NoError(t, err)

	assert.Equal(t, int64(5000+2000*3), resp.Amount)
	assert.Equal(t, string(models.TierHourly), resp.Tier)
}

func TestExecute_VehicleNotParked(t *testing.T) {
	env := newTestEnv()
	env.vehicles.parked = nil

	_, err := env.uc.Execute(context.Background(), &Request{PlateNumber: "A 123 BC"})
	assert.ErrorIs(t, err, ErrVehicleNotParked)
}

func TestExecute_NoOpenTransaction(t *testing.T) {
	env := newTestEnv()
	env.txns.open = nil

	_, err := env.uc.Execute(context.Background(), &Request{PlateNumber: "A 123 BC"})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestExecute_EmptyPlate(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{PlateNumber: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
