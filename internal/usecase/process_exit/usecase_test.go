package process_exit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkirc/parking-service/internal/domain"
	transactionRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
	"github.com/parkirc/parking-service/internal/integrations/gateservice"
	"github.com/parkirc/parking-service/internal/service/pricing"
)

// --- стабы зависимостей ---

type stubSpaceRepo struct {
	releasedSpace int64
}

func (s *stubSpaceRepo) Release(_ context.Context, spaceID int64, _ time.Time) error {
	s.releasedSpace = spaceID
	return nil
}

type stubVehicleRepo struct {
	parked   *domain.Vehicle
	exitedID int64
}

func (s *stubVehicleRepo) GetParkedByPlate(_ context.Context, _ string) (*domain.Vehicle, error) {
	if s.parked == nil {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return s.parked, nil
}

func (s *stubVehicleRepo) MarkExited(_ context.Context, id int64, _ time.Time) error {
	s.exitedID = id
	return nil
}

type stubTxnRepo struct {
	open         *domain.Transaction
	closedID     int64
	closedAmount int64
	closedMethod string
}

func (s *stubTxnRepo) GetOpenByVehicleID(_ context.Context, _ int64) (*domain.Transaction, error) {
	if s.open == nil {
		return nil, transactionRepo.ErrTransactionNotFound
	}
	return s.open, nil
}

func (s *stubTxnRepo) Close(_ context.Context, id int64, _ time.Time, amount int64, paymentMethod string) error {
	s.closedID = id
	s.closedAmount = amount
	s.closedMethod = paymentMethod
	return nil
}

type stubRateRepo struct {
	schedules []*domain.RateSchedule
}

func (s *stubRateRepo) ListEffective(_ context.Context, _ string, _ time.Time) ([]*domain.RateSchedule, error) {
	return s.schedules, nil
}

type stubOperatorRepo struct {
	operator *domain.Operator
	err      error
}

func (s *stubOperatorRepo) GetByID(_ context.Context, _ int64) (*domain.Operator, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.operator, nil
}

type stubJournalRepo struct {
	entries []*domain.JournalEntry
}

func (s *stubJournalRepo) Create(_ context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	s.entries = append(s.entries, e)
	return e, nil
}

type stubGateClient struct {
	calls   int
	lastJob gateservice.ReceiptPrintJob
	err     error
}

func (s *stubGateClient) NotifyExitWithGracefulDegradation(_ context.Context, job gateservice.ReceiptPrintJob) error {
	s.calls++
	s.lastJob = job
	return s.err
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	spaces   *stubSpaceRepo
	vehicles *stubVehicleRepo
	txns     *stubTxnRepo
	rates    *stubRateRepo
	ops      *stubOperatorRepo
	journal  *stubJournalRepo
	gate     *stubGateClient
	now      time.Time
	entry    time.Time
}

func newTestEnv() *testEnv {
	entry := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	now := entry.Add(5*time.Hour + 10*time.Minute) // 6 оплачиваемых часов

	env := &testEnv{
		spaces: &stubSpaceRepo{},
		vehicles: &stubVehicleRepo{
			parked: &domain.Vehicle{ID: 100, PlateNumber: "A 123 BC", IsParked: true},
		},
		txns: &stubTxnRepo{
			open: &domain.Transaction{
				ID:                200,
				TransactionNumber: "TRX-20250602-AAAAAAAA",
				TicketNumber:      "TKT-20250602-AAAAAAAA",
				VehicleID:         100,
				SpaceID:           1,
				EntryTime:         entry,
				HourlyRate:        1500,
				Status:            domain.TransactionActive,
				PlateNumber:       "A 123 BC",
				VehicleType:       "car",
				SpaceNumber:       "A-01",
			},
		},
		rates: &stubRateRepo{},
		ops: &stubOperatorRepo{
			operator: &domain.Operator{ID: 7, Name: "Test Operator", IsActive: true},
		},
		journal: &stubJournalRepo{},
		gate:    &stubGateClient{},
		now:     now,
		entry:   entry,
	}

	env.uc = NewUseCase(
		env.spaces,
		env.vehicles,
		env.txns,
		env.rates,
		pricing.NewService(),
		env.ops,
		env.journal,
		env.gate,
		&stubTxManager{},
		noopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: now}

	return env
}

func validRequest() *Request {
	return &Request{
		PlateNumber:   "a 123 bc",
		PaymentMethod: "Cash",
		OperatorID:    7,
	}
}

func TestExecute_FlatRateWithoutSchedule(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Без сетки применяется плоская ставка места: 6 часов * 1500
	assert.Equal(t, int64(6), resp.BillableHours)
	assert.Equal(t, int64(9000), resp.Amount)
	assert.Equal(t, "cash", resp.PaymentMethod)
	assert.Equal(t, "A 123 BC", resp.PlateNumber)
	assert.Equal(t, env.now, resp.ExitTime)

	assert.Equal(t, int64(200), env.txns.closedID)
	assert.Equal(t, int64(9000), env.txns.closedAmount)
	assert.Equal(t, "cash", env.txns.closedMethod)
	assert.Equal(t, int64(1), env.spaces.releasedSpace)
	assert.Equal(t, int64(100), env.vehicles.exitedID)

	require.Len(t, env.journal.entries, 1)
	assert.Equal(t, domain.JournalActionCheckOut, env.journal.entries[0].Action)

	assert.Equal(t, 1, env.gate.calls)
	assert.Equal(t, int64(9000), env.gate.lastJob.Amount)
}

func TestExecute_TieredSchedule(t *testing.T) {
	env := newTestEnv()
	env.rates.schedules = []*domain.RateSchedule{
		{ID: 42, VehicleType: "car", BaseRate: 5000, HourlyRate: 2000, DailyRate: 50000, WeeklyRate: 300000},
	}

	// 6 оплачиваемых часов: база за первый час плюс почасовая за остальные
	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(5000+2000*5), resp.Amount)
}

func TestExecute_VehicleNotParked(t *testing.T) {
	env := newTestEnv()
	env.vehicles.parked = nil

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleNotParked)
	assert.Equal(t, 0, env.gate.calls)
}

func TestExecute_NoOpenTransaction(t *testing.T) {
	env := newTestEnv()
	env.txns.open = nil

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestExecute_ExitBeforeEntry(t *testing.T) {
	env := newTestEnv()
	env.txns.open.EntryTime = env.now.Add(time.Hour)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Zero(t, env.txns.closedID)
}

func TestExecute_OperatorInactive(t *testing.T) {
	env := newTestEnv()
	env.ops.operator.IsActive = false

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrOperatorInactive)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty plate", func(r *Request) { r.PlateNumber = "" }},
		{"unknown payment method", func(r *Request) { r.PaymentMethod = "crypto" }},
		{"zero operator", func(r *Request) { r.OperatorID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_GateDegradationDoesNotFail(t *testing.T) {
	env := newTestEnv()
	env.gate.err = gateservice.ErrServiceDegraded

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(9000), resp.Amount)
	assert.Equal(t, 1, env.gate.calls)
}
