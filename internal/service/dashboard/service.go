package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/service/dashboard/models"
)

// recentLimit количество недавних операций в сводке
const recentLimit = 10

// Service сервис сводки состояния парковки
type Service struct {
	spaceRepo    SpaceRepository
	vehicleRepo  VehicleRepository
	txnRepo      TransactionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сводки
func NewService(
	spaceRepo SpaceRepository,
	vehicleRepo VehicleRepository,
	txnRepo TransactionRepository,
	logger Logger,
) *Service {
	return &Service{
		spaceRepo:    spaceRepo,
		vehicleRepo:  vehicleRepo,
		txnRepo:      txnRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Snapshot собирает сводку: заполненность, выручка и въезды за сегодня,
// распределение по категориям и недавние операции
func (s *Service) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	now := s.timeProvider.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	total, occupied, err := s.spaceRepo.CountByOccupancy(ctx)
	if err != nil {
		s.logger.Error("Snapshot: failed to count spaces: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - count spaces: %v", ErrInternal, err)
	}

	revenue, err := s.txnRepo.SumRevenueBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("Snapshot: failed to sum revenue: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - sum revenue: %v", ErrInternal, err)
	}

	hourCounts, err := s.txnRepo.CountEntriesByHour(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("Snapshot: failed to count entries by hour: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - count entries by hour: %v", ErrInternal, err)
	}

	parkedByType, err := s.vehicleRepo.CountParkedByType(ctx)
	if err != nil {
		s.logger.Error("Snapshot: failed to count parked vehicles: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - count parked vehicles: %v", ErrInternal, err)
	}

	recent, err := s.txnRepo.ListWithFilter(ctx, domain.TransactionFilter{Limit: recentLimit})
	if err != nil {
		s.logger.Error("Snapshot: failed to list recent transactions: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - list recent transactions: %v", ErrInternal, err)
	}

	snapshot := &models.Snapshot{
		GeneratedAt:    now,
		TotalSpaces:    total,
		OccupiedSpaces: occupied,
		FreeSpaces:     total - occupied,
		TodayRevenue:   revenue,
	}
	if total > 0 {
		snapshot.OccupancyRate = float64(occupied) / float64(total)
	}

	snapshot.EntriesByHour = make([]models.HourEntries, 0, len(hourCounts))
	for _, hc := range hourCounts {
		snapshot.TodayEntries += hc.Entries
		snapshot.EntriesByHour = append(snapshot.EntriesByHour, models.HourEntries{
			Hour:    hc.Hour,
			Entries: hc.Entries,
		})
	}

	snapshot.ParkedByType = make([]models.VehicleTypeCount, 0, len(parkedByType))
	for _, stat := range parkedByType {
		snapshot.ParkedByType = append(snapshot.ParkedByType, models.VehicleTypeCount{
			VehicleType: stat.VehicleType,
			Count:       stat.Count,
		})
	}

	snapshot.Recent = make([]models.RecentTransaction, 0, len(recent))
	for _, t := range recent {
		snapshot.Recent = append(snapshot.Recent, models.RecentTransaction{
			TicketNumber: t.TicketNumber,
			PlateNumber:  t.PlateNumber,
			VehicleType:  t.VehicleType,
			SpaceNumber:  t.SpaceNumber,
			EntryTime:    t.EntryTime,
			ExitTime:     t.ExitTime,
			Amount:       t.Amount,
			Status:       string(t.Status),
		})
	}

	s.logger.Info("Snapshot: %d/%d spaces occupied, today revenue=%d, entries=%d",
		occupied, total, revenue, snapshot.TodayEntries)

	return snapshot, nil
}
