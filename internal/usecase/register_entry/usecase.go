package register_entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parkirc/parking-service/internal/domain"
	operatorRepo "github.com/parkirc/parking-service/internal/infra/storage/operator"
	vehicleRepo "github.com/parkirc/parking-service/internal/infra/storage/vehicle"
	"github.com/parkirc/parking-service/internal/integrations/gateservice"
)

// UseCase use case регистрации въезда транспортного средства
type UseCase struct {
	spaceRepo    SpaceRepository
	vehicleRepo  VehicleRepository
	txnRepo      TransactionRepository
	shiftRepo    ShiftRepository
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
	shiftRepo ShiftRepository,
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
		shiftRepo:    shiftRepo,
		operatorRepo: operatorRepo,
		journalRepo:  journalRepo,
		gateClient:   gateClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case регистрации въезда.
// Выбор места и создание транзакции выполняются в сериализуемой транзакции,
// чтобы два одновременных въезда не получили одно и то же место
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterEntry: plate=%s, type=%s, operator=%d", req.PlateNumber, req.VehicleType, req.OperatorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterEntry: validation failed: %v", err)
		return nil, err
	}

	plate := normalizePlate(req.PlateNumber)
	vehicleType := strings.ToLower(strings.TrimSpace(req.VehicleType))
	now := uc.timeProvider.Now()

	// 2. Проверяем оператора
	operator, err := uc.operatorRepo.GetByID(ctx, req.OperatorID)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			uc.logger.Warn("RegisterEntry: operator id=%d not found", req.OperatorID)
			return nil, ErrOperatorNotFound
		}
		uc.logger.Error("RegisterEntry: failed to get operator id=%d: %v", req.OperatorID, err)
		return nil, fmt.Errorf("%w: failed to get operator: %v", ErrInternal, err)
	}
	if !operator.IsActive {
		uc.logger.Warn("RegisterEntry: operator id=%d is inactive", req.OperatorID)
		return nil, ErrOperatorInactive
	}

	// 3. Определяем активную смену по времени въезда (может отсутствовать)
	shift, err := uc.resolveShift(ctx, now)
	if err != nil {
		return nil, err
	}

	var (
		resultTxn   *domain.Transaction
		resultSpace *domain.ParkingSpace
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем, что автомобиль с таким госномером еще не на парковке
		parked, err := uc.vehicleRepo.GetParkedByPlate(txCtx, plate)
		if err != nil && !errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Error("RegisterEntry: failed to check parked vehicle plate=%s: %v", plate, err)
			return fmt.Errorf("%w: failed to check parked vehicle: %v", ErrInternal, err)
		}
		if parked != nil {
			uc.logger.Warn("RegisterEntry: plate=%s is already parked, vehicle id=%d", plate, parked.ID)
			return ErrVehicleAlreadyParked
		}

		// 4.2. Получаем свободные места нужной категории с блокировкой (FOR UPDATE)
		candidates, err := uc.spaceRepo.ListFreeByType(txCtx, vehicleType)
		if err != nil {
			uc.logger.Error("RegisterEntry: failed to list free spaces type=%s: %v", vehicleType, err)
			return fmt.Errorf("%w: failed to list free spaces: %v", ErrInternal, err)
		}

		// 4.3. Выбираем место по политике LRU
		space := selectSpace(candidates, vehicleType)
		if space == nil {
			uc.logger.Warn("RegisterEntry: no free space for type=%s", vehicleType)
			return ErrNoSpaceAvailable
		}

		uc.logger.Info("RegisterEntry: allocated space %s (id=%d) for plate=%s", space.SpaceNumber, space.ID, plate)

		// 4.4. Создаем запись о транспортном средстве
		vehicle := &domain.Vehicle{
			PlateNumber: plate,
			VehicleType: vehicleType,
			DriverName:  req.DriverName,
			PhoneNumber: req.PhoneNumber,
			EntryTime:   now,
			SpaceID:     &space.ID,
			IsParked:    true,
		}
		if shift != nil {
			vehicle.ShiftID = &shift.ID
		}

		created, err := uc.vehicleRepo.Create(txCtx, vehicle)
		if err != nil {
			uc.logger.Error("RegisterEntry: failed to create vehicle plate=%s: %v", plate, err)
			return fmt.Errorf("%w: failed to create vehicle: %v", ErrInternal, err)
		}

		// 4.5. Занимаем место
		if err := uc.spaceRepo.MarkOccupied(txCtx, space.ID, created.ID, now); err != nil {
			uc.logger.Error("RegisterEntry: failed to occupy space id=%d: %v", space.ID, err)
			return fmt.Errorf("%w: failed to occupy space: %v", ErrInternal, err)
		}

		// 4.6. Создаем парковочную транзакцию с денормализацией данных
		txn := &domain.Transaction{
			TransactionNumber: newTransactionNumber(now),
			TicketNumber:      newTicketNumber(now),
			VehicleID:         created.ID,
			SpaceID:           space.ID,
			EntryTime:         now,
			HourlyRate:        space.HourlyRate,
			Status:            domain.TransactionActive,
			PaymentStatus:     domain.PaymentPending,
			PlateNumber:       plate,
			VehicleType:       vehicleType,
			SpaceNumber:       space.SpaceNumber,
		}
		if shift != nil {
			txn.ShiftID = &shift.ID
		}

		createdTxn, err := uc.txnRepo.Create(txCtx, txn)
		if err != nil {
			uc.logger.Error("RegisterEntry: failed to create transaction plate=%s: %v", plate, err)
			return fmt.Errorf("%w: failed to create transaction: %v", ErrInternal, err)
		}

		// 4.7. Пишем запись в журнал операций
		entry := &domain.JournalEntry{
			Action:      domain.JournalActionCheckIn,
			Description: fmt.Sprintf("Vehicle %s checked in to space %s, ticket %s", plate, space.SpaceNumber, createdTxn.TicketNumber),
			OperatorID:  req.OperatorID,
			Timestamp:   now,
		}
		if _, err := uc.journalRepo.Create(txCtx, entry); err != nil {
			uc.logger.Error("RegisterEntry: failed to create journal entry: %v", err)
			return fmt.Errorf("%w: failed to create journal entry: %v", ErrInternal, err)
		}

		resultTxn = createdTxn
		resultSpace = space
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Открываем шлагбаум и печатаем талон уже после фиксации транзакции.
	// Недоступность контроллера не отменяет оформленный въезд
	gateErr := uc.gateClient.NotifyEntryWithGracefulDegradation(ctx, gateservice.TicketPrintJob{
		TicketNumber: resultTxn.TicketNumber,
		PlateNumber:  plate,
		VehicleType:  vehicleType,
		SpaceNumber:  resultSpace.SpaceNumber,
		EntryTime:    now,
	})
	if gateErr != nil {
		uc.logger.Warn("RegisterEntry: gate notification degraded for ticket=%s: %v", resultTxn.TicketNumber, gateErr)
	}

	uc.logger.Info("RegisterEntry: successfully registered entry, transaction id=%d, ticket=%s",
		resultTxn.ID, resultTxn.TicketNumber)

	resp := &Response{
		TransactionID:     resultTxn.ID,
		TransactionNumber: resultTxn.TransactionNumber,
		TicketNumber:      resultTxn.TicketNumber,
		PlateNumber:       plate,
		VehicleType:       vehicleType,
		SpaceID:           resultSpace.ID,
		SpaceNumber:       resultSpace.SpaceNumber,
		EntryTime:         now,
		HourlyRate:        resultSpace.HourlyRate,
	}
	if shift != nil {
		resp.ShiftID = &shift.ID
		resp.ShiftName = &shift.Name
	}

	return resp, nil
}

// resolveShift подбирает активную смену, окно которой содержит указанный момент.
// Отсутствие подходящей смены не является ошибкой - въезд оформляется без смены
func (uc *UseCase) resolveShift(ctx context.Context, at time.Time) (*domain.Shift, error) {
	shifts, err := uc.shiftRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("RegisterEntry: failed to list active shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to list active shifts: %v", ErrInternal, err)
	}

	for _, shift := range shifts {
		if shift.ContainsTime(at) {
			uc.logger.Info("RegisterEntry: entry falls into shift %q (id=%d)", shift.Name, shift.ID)
			return shift, nil
		}
	}

	uc.logger.Info("RegisterEntry: no active shift covers %s", at.Format(domain.TimeFormat))
	return nil, nil
}

// newTicketNumber генерирует номер въездного талона
func newTicketNumber(at time.Time) string {
	return fmt.Sprintf("TKT-%s-%s", at.Format("20060102"), shortUID())
}

// newTransactionNumber генерирует номер парковочной транзакции
func newTransactionNumber(at time.Time) string {
	return fmt.Sprintf("TRX-%s-%s", at.Format("20060102"), shortUID())
}

// shortUID возвращает короткий уникальный суффикс
func shortUID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
