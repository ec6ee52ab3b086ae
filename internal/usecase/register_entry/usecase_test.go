package register_entry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkirc/parking-service/internal/domain"
	operatorRepo "github.com/parkirc/parking-service/internal/infra/storage/operator"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
	"github.com/parkirc/parking-service/internal/integrations/gateservice"
)

// --- стабы зависимостей ---

type stubSpaceRepo struct {
	spaces         []*domain.ParkingSpace
	occupiedSpace  int64
	occupiedVehID  int64
	markOccupieded bool
}

func (s *stubSpaceRepo) ListFreeByType(_ context.Context, _ string) ([]*domain.ParkingSpace, error) {
	return s.spaces, nil
}

func (s *stubSpaceRepo) MarkOccupied(_ context.Context, spaceID, vehicleID int64, _ time.Time) error {
	s.markOccupieded = true
	s.occupiedSpace = spaceID
	s.occupiedVehID = vehicleID
	return nil
}

type stubVehicleRepo struct {
	parked  *domain.Vehicle
	created *domain.Vehicle
}

func (s *stubVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	created := *v
	created.ID = 100
	s.created = &created
	return &created, nil
}

func (s *stubVehicleRepo) GetParkedByPlate(_ context.Context, _ string) (*domain.Vehicle, error) {
	if s.parked == nil {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return s.parked, nil
}

type stubTxnRepo struct {
	created *domain.Transaction
}

func (s *stubTxnRepo) Create(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	created := *txn
	created.ID = 200
	s.created = &created
	return &created, nil
}

type stubShiftRepo struct {
	shifts []*domain.Shift
}

func (s *stubShiftRepo) ListActive(_ context.Context) ([]*domain.Shift, error) {
	return s.shifts, nil
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
	calls int
	err   error
}

func (s *stubGateClient) NotifyEntryWithGracefulDegradation(_ context.Context, _ gateservice.TicketPrintJob) error {
	s.calls++
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
	shifts   *stubShiftRepo
	ops      *stubOperatorRepo
	journal  *stubJournalRepo
	gate     *stubGateClient
	now      time.Time
}

func newTestEnv() *testEnv {
	now := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

	env := &testEnv{
		spaces: &stubSpaceRepo{
			spaces: []*domain.ParkingSpace{
				{ID: 1, SpaceNumber: "A-01", SpaceType: "car", IsActive: true, HourlyRate: 1500},
			},
		},
		vehicles: &stubVehicleRepo{},
		txns:     &stubTxnRepo{},
		shifts:   &stubShiftRepo{},
		ops: &stubOperatorRepo{
			operator: &domain.Operator{ID: 7, Name: "Test Operator", IsActive: true},
		},
		journal: &stubJournalRepo{},
		gate:    &stubGateClient{},
		now:     now,
	}

	env.uc = NewUseCase(
		env.spaces,
		env.vehicles,
		env.txns,
		env.shifts,
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
		PlateNumber: " a 123 bc ",
		VehicleType: "Car",
		OperatorID:  7,
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "A 123 BC", resp.PlateNumber)
	assert.Equal(t, "car", resp.VehicleType)
	assert.Equal(t, int64(1), resp.SpaceID)
	assert.Equal(t, "A-01", resp.SpaceNumber)
	assert.Equal(t, env.now, resp.EntryTime)
	assert.Equal(t, int64(1500), resp.HourlyRate)
	assert.NotEmpty(t, resp.TicketNumber)
	assert.NotEmpty(t, resp.TransactionNumber)
	assert.Nil(t, resp.ShiftID)

	// Место занято только что созданным транспортом
	assert.True(t, env.spaces.markOccupieded)
	assert.Equal(t, int64(1), env.spaces.occupiedSpace)
	assert.Equal(t, env.vehicles.created.ID, env.spaces.occupiedVehID)

	// Транзакция снимает тариф места и денормализует данные
	require.NotNil(t, env.txns.created)
	assert.Equal(t, int64(1500), env.txns.created.HourlyRate)
	assert.Equal(t, "A 123 BC", env.txns.created.PlateNumber)
	assert.Equal(t, domain.TransactionActive, env.txns.created.Status)
	assert.Equal(t, domain.PaymentPending, env.txns.created.PaymentStatus)

	// Журнал и шлагбаум
	require.Len(t, env.journal.entries, 1)
	assert.Equal(t, domain.JournalActionCheckIn, env.journal.entries[0].Action)
	assert.Equal(t, 1, env.gate.calls)
}

func TestExecute_AlreadyParked(t *testing.T) {
	env := newTestEnv()
	env.vehicles.parked = &domain.Vehicle{ID: 55, PlateNumber: "A 123 BC", IsParked: true}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleAlreadyParked)
	assert.False(t, env.spaces.markOccupieded)
}

func TestExecute_NoSpaceAvailable(t *testing.T) {
	env := newTestEnv()
	env.spaces.spaces = nil

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoSpaceAvailable)
	assert.Equal(t, 0, env.gate.calls)
}

func TestExecute_OperatorChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		env := newTestEnv()
		env.ops.operator = nil
		env.ops.err = operatorRepo.ErrOperatorNotFound

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrOperatorNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		env := newTestEnv()
		env.ops.operator.IsActive = false

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrOperatorInactive)
	})
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty plate", func(r *Request) { r.PlateNumber = "   " }},
		{"empty vehicle type", func(r *Request) { r.VehicleType = "" }},
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
	assert.NotEmpty(t, resp.TicketNumber)
	assert.Equal(t, 1, env.gate.calls)
}

func TestExecute_ResolvesActiveShift(t *testing.T) {
	env := newTestEnv()
	env.shifts.shifts = []*domain.Shift{
		{ID: 3, Name: "Night", StartTime: "22:00", EndTime: "06:00", IsActive: true},
		{ID: 4, Name: "Day", StartTime: "08:00", EndTime: "20:00", IsActive: true},
	}

	// 14:30 попадает в дневную смену
	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.ShiftID)
	assert.Equal(t, int64(4), *resp.ShiftID)
	require.NotNil(t, resp.ShiftName)
	assert.Equal(t, "Day", *resp.ShiftName)

	require.NotNil(t, env.txns.created.ShiftID)
	assert.Equal(t, int64(4), *env.txns.created.ShiftID)
}
