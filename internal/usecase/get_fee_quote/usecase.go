package get_fee_quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	txnRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
)

// UseCase use case предварительного расчета стоимости стоянки.
// Ничего не изменяет - транзакция остается открытой, место занятым
type UseCase struct {
	vehicleRepo  VehicleRepository
	txnRepo      TransactionRepository
	rateRepo     RateRepository
	pricing      PricingService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	txnRepo TransactionRepository,
	rateRepo RateRepository,
	pricing PricingService,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:  vehicleRepo,
		txnRepo:      txnRepo,
		rateRepo:     rateRepo,
		pricing:      pricing,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case предварительного расчета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	plate := strings.ToUpper(strings.TrimSpace(req.PlateNumber))
	if plate == "" {
		return nil, fmt.Errorf("%w: plateNumber is required", ErrInvalidInput)
	}

	uc.logger.Info("GetFeeQuote: plate=%s", plate)

	now := uc.timeProvider.Now()

	// 1. Находим припаркованный автомобиль
	vehicle, err := uc.vehicleRepo.GetParkedByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("GetFeeQuote: plate=%s is not parked", plate)
			return nil, ErrVehicleNotParked
		}
		uc.logger.Error("GetFeeQuote: failed to get parked vehicle plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: failed to get parked vehicle: %v", ErrInternal, err)
	}

	// 2. Находим открытую транзакцию
	txn, err := uc.txnRepo.GetOpenByVehicleID(ctx, vehicle.ID)
	if err != nil {
		if errors.Is(err, txnRepo.ErrTransactionNotFound) {
			uc.logger.Warn("GetFeeQuote: no open transaction for vehicle id=%d", vehicle.ID)
			return nil, ErrTransactionNotFound
		}
		uc.logger.Error("GetFeeQuote: failed to get open transaction for vehicle id=%d: %v", vehicle.ID, err)
		return nil, fmt.Errorf("%w: failed to get open transaction: %v", ErrInternal, err)
	}

	// 3. Разрешаем действующую тарифную сетку категории
	schedule, err := uc.resolveSchedule(ctx, txn.VehicleType, now)
	if err != nil {
		return nil, err
	}

	// 4. Считаем стоимость на текущий момент
	breakdown, err := uc.pricing.Calculate(schedule, txn.HourlyRate, txn.EntryTime, now)
	if err != nil {
		uc.logger.Error("GetFeeQuote: failed to calculate fee for transaction id=%d: %v", txn.ID, err)
		return nil, fmt.Errorf("%w: failed to calculate fee: %v", ErrInternal, err)
	}

	uc.logger.Info("GetFeeQuote: transaction id=%d: hours=%d, amount=%d, tier=%s",
		txn.ID, breakdown.BillableHours, breakdown.Amount, breakdown.Tier)

	return &Response{
		TicketNumber:  txn.TicketNumber,
		PlateNumber:   plate,
		VehicleType:   txn.VehicleType,
		SpaceNumber:   txn.SpaceNumber,
		EntryTime:     txn.EntryTime,
		QuotedAt:      now,
		BillableHours: breakdown.BillableHours,
		Amount:        breakdown.Amount,
		Tier:          string(breakdown.Tier),
	}, nil
}

// resolveSchedule возвращает самую свежую действующую тарифную сетку категории
func (uc *UseCase) resolveSchedule(ctx context.Context, vehicleType string, at time.Time) (*domain.RateSchedule, error) {
	schedules, err := uc.rateRepo.ListEffective(ctx, vehicleType, at)
	if err != nil {
		uc.logger.Error("GetFeeQuote: failed to list effective rate schedules type=%s: %v", vehicleType, err)
		return nil, fmt.Errorf("%w: failed to list effective rate schedules: %v", ErrInternal, err)
	}

	if len(schedules) == 0 {
		return nil, nil
	}

	return schedules[0], nil
}
