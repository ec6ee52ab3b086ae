package process_exit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	operatorRepo "github.com/parkirc/parking-service/internal/infra/storage/operator"
	txnRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
	"github.com/parkirc/parking-service/internal/integrations/gateservice"
	"github.com/parkirc/parking-service/internal/service/pricing"
)

// UseCase use case оформления выезда транспортного средства
type UseCase struct {
	spaceRepo    SpaceRepository
	vehicleRepo  VehicleRepository
	txnRepo      TransactionRepository
	rateRepo     RateRepository
	pricing      PricingService
	operatorRepo OperatorRepository
	journalRepo  JournalRepository
	gateClient   GateServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	vehicleRepo VehicleRepository,
	txnRepo TransactionRepository,
	rateRepo RateRepository,
	pricing PricingService,
	operatorRepo OperatorRepository,
	journalRepo JournalRepository,
	gateClient GateServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:    spaceRepo,
		vehicleRepo:  vehicleRepo,
		txnRepo:      txnRepo,
		rateRepo:     rateRepo,
		pricing:      pricing,
		operatorRepo: operatorRepo,
		journalRepo:  journalRepo,
		gateClient:   gateClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case оформления выезда.
// Расчет стоимости, закрытие транзакции и освобождение места выполняются
// в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessExit: plate=%s, method=%s, operator=%d", req.PlateNumber, req.PaymentMethod, req.OperatorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProcessExit: validation failed: %v", err)
		return nil, err
	}

	plate := normalizePlate(req.PlateNumber)
	paymentMethod := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	now := uc.timeProvider.Now()

	// 2. Проверяем оператора
	operator, err := uc.operatorRepo.GetByID(ctx, req.OperatorID)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			uc.logger.Warn("ProcessExit: operator id=%d not found", req.OperatorID)
			return nil, ErrOperatorNotFound
		}
		uc.logger.Error("ProcessExit: failed to get operator id=%d: %v", req.OperatorID, err)
		return nil, fmt.Errorf("%w: failed to get operator: %v", ErrInternal, err)
	}
	if !operator.IsActive {
		uc.logger.Warn("ProcessExit: operator id=%d is inactive", req.OperatorID)
		return nil, ErrOperatorInactive
	}

	var (
		resultTxn *domain.Transaction
		hours     int64
		amount    int64
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим припаркованный автомобиль с блокировкой (FOR UPDATE)
		vehicle, err := uc.vehicleRepo.GetParkedByPlate(txCtx, plate)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("ProcessExit: plate=%s is not parked", plate)
				return ErrVehicleNotParked
			}
			uc.logger.Error("ProcessExit: failed to get parked vehicle plate=%s: %v", plate, err)
			return fmt.Errorf("%w: failed to get parked vehicle: %v", ErrInternal, err)
		}

		// 3.2. Находим открытую транзакцию
		txn, err := uc.txnRepo.GetOpenByVehicleID(txCtx, vehicle.ID)
		if err != nil {
			if errors.Is(err, txnRepo.ErrTransactionNotFound) {
				uc.logger.Warn("ProcessExit: no open transaction for vehicle id=%d", vehicle.ID)
				return ErrTransactionNotFound
			}
			uc.logger.Error("ProcessExit: failed to get open transaction for vehicle id=%d: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to get open transaction: %v", ErrInternal, err)
		}

		// 3.3. Разрешаем действующую тарифную сетку категории.
		// Если сетки нет, считаем по плоской почасовой ставке места
		schedule, err := uc.resolveSchedule(txCtx, txn.VehicleType, now)
		if err != nil {
			return err
		}

		// 3.4. Вычисляем стоимость стоянки
		breakdown, err := uc.pricing.Calculate(schedule, txn.HourlyRate, txn.EntryTime, now)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidInterval) {
				uc.logger.Warn("ProcessExit: invalid interval for transaction id=%d: entry=%s, exit=%s",
					txn.ID, txn.EntryTime, now)
				return ErrInvalidInterval
			}
			uc.logger.Error("ProcessExit: failed to calculate fee for transaction id=%d: %v", txn.ID, err)
			return fmt.Errorf("%w: failed to calculate fee: %v", ErrInternal, err)
		}

		hours = breakdown.BillableHours
		amount = breakdown.Amount
		uc.logger.Info("ProcessExit: fee for transaction id=%d: hours=%d, amount=%d, tier=%s",
			txn.ID, hours, amount, breakdown.Tier)

		// 3.5. Закрываем транзакцию
		if err := uc.txnRepo.Close(txCtx, txn.ID, now, amount, paymentMethod); err != nil {
			uc.logger.Error("ProcessExit: failed to close transaction id=%d: %v", txn.ID, err)
			return fmt.Errorf("%w: failed to close transaction: %v", ErrInternal, err)
		}

		// 3.6. Освобождаем место
		if err := uc.spaceRepo.Release(txCtx, txn.SpaceID, now); err != nil {
			uc.logger.Error("ProcessExit: failed to release space id=%d: %v", txn.SpaceID, err)
			return fmt.Errorf("%w: failed to release space: %v", ErrInternal, err)
		}

		// 3.7. Помечаем автомобиль выехавшим
		if err := uc.vehicleRepo.MarkExited(txCtx, vehicle.ID, now); err != nil {
			uc.logger.Error("ProcessExit: failed to mark vehicle id=%d exited: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to mark vehicle exited: %v", ErrInternal, err)
		}

		// 3.8. Пишем запись в журнал операций
		entry := &domain.JournalEntry{
			Action:      domain.JournalActionCheckOut,
			Description: fmt.Sprintf("Vehicle %s checked out from space %s, amount %d", plate, txn.SpaceNumber, amount),
			OperatorID:  req.OperatorID,
			Timestamp:   now,
		}
		if _, err := uc.journalRepo.Create(txCtx, entry); err != nil {
			uc.logger.Error("ProcessExit: failed to create journal entry: %v", err)
			return fmt.Errorf("%w: failed to create journal entry: %v", ErrInternal, err)
		}

		resultTxn = txn
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Открываем шлагбаум и печатаем квитанцию уже после фиксации транзакции.
	// Недоступность контроллера не отменяет оформленный выезд
	gateErr := uc.gateClient.NotifyExitWithGracefulDegradation(ctx, gateservice.ReceiptPrintJob{
		TicketNumber:  resultTxn.TicketNumber,
		PlateNumber:   plate,
		EntryTime:     resultTxn.EntryTime,
		ExitTime:      now,
		Amount:        amount,
		PaymentMethod: paymentMethod,
	})
	if gateErr != nil {
		uc.logger.Warn("ProcessExit: gate notification degraded for ticket=%s: %v", resultTxn.TicketNumber, gateErr)
	}

	uc.logger.Info("ProcessExit: successfully processed exit, transaction id=%d, amount=%d", resultTxn.ID, amount)

	return &Response{
		TransactionID:     resultTxn.ID,
		TransactionNumber: resultTxn.TransactionNumber,
		TicketNumber:      resultTxn.TicketNumber,
		PlateNumber:       plate,
		VehicleType:       resultTxn.VehicleType,
		SpaceNumber:       resultTxn.SpaceNumber,
		EntryTime:         resultTxn.EntryTime,
		ExitTime:          now,
		BillableHours:     hours,
		Amount:            amount,
		PaymentMethod:     paymentMethod,
	}, nil
}

// resolveSchedule возвращает самую свежую действующую тарифную сетку категории.
// Отсутствие сетки не является ошибкой
func (uc *UseCase) resolveSchedule(ctx context.Context, vehicleType string, at time.Time) (*domain.RateSchedule, error) {
	schedules, err := uc.rateRepo.ListEffective(ctx, vehicleType, at)
	if err != nil {
		uc.logger.Error("ProcessExit: failed to list effective rate schedules type=%s: %v", vehicleType, err)
		return nil, fmt.Errorf("%w: failed to list effective rate schedules: %v", ErrInternal, err)
	}

	if len(schedules) == 0 {
		return nil, nil
	}

	// Репозиторий возвращает сетки от самой свежей effective_from к более старым
	return schedules[0], nil
}
