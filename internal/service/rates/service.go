package rates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parkirc/parking-service/internal/domain"
	rateRepo "github.com/parkirc/parking-service/internal/infra/storage/rate"
	"github.com/parkirc/parking-service/internal/service/rates/models"
)

// Service сервис для управления тарифными сетками
type Service struct {
	rateRepo     RateRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(rateRepo RateRepository, logger Logger) *Service {
	return &Service{
		rateRepo:     rateRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateSchedule создает новую тарифную сетку.
// Если effectiveFrom не указан, сетка действует с момента создания
func (s *Service) CreateSchedule(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("CreateSchedule: type=%s, createdBy=%s", req.VehicleType, req.CreatedBy)

	if err := validateCreateSchedule(req); err != nil {
		s.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()

	schedule := &domain.RateSchedule{
		VehicleType:    strings.ToLower(strings.TrimSpace(req.VehicleType)),
		BaseRate:       req.BaseRate,
		HourlyRate:     req.HourlyRate,
		DailyRate:      req.DailyRate,
		WeeklyRate:     req.WeeklyRate,
		MonthlyRate:    req.MonthlyRate,
		PenaltyRate:    req.PenaltyRate,
		IsActive:       true,
		EffectiveFrom:  now,
		EffectiveTo:    req.EffectiveTo,
		CreatedBy:      strings.TrimSpace(req.CreatedBy),
		LastModifiedBy: strings.TrimSpace(req.CreatedBy),
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	if req.EffectiveFrom != nil {
		schedule.EffectiveFrom = *req.EffectiveFrom
	}

	created, err := s.rateRepo.Create(ctx, schedule)
	if err != nil {
		s.logger.Error("CreateSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSchedule: successfully created schedule id=%d", created.ID)
	return models.FromDomainSchedule(created), nil
}

// GetSchedule получает тарифную сетку по ID
func (s *Service) GetSchedule(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	schedule, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rateRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// ListSchedules получает все тарифные сетки
func (s *Service) ListSchedules(ctx context.Context) (*models.ScheduleListResponse, error) {
	schedules, err := s.rateRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSchedules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedules(schedules), nil
}

// ListEffectiveSchedules получает сетки категории, действующие в данный момент
func (s *Service) ListEffectiveSchedules(ctx context.Context, vehicleType string) (*models.ScheduleListResponse, error) {
	vehicleType = strings.ToLower(strings.TrimSpace(vehicleType))
	if vehicleType == "" {
		return nil, fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}

	schedules, err := s.rateRepo.ListEffective(ctx, vehicleType, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListEffectiveSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEffectiveSchedules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedules(schedules), nil
}

// UpdateSchedule обновляет тарифную сетку
func (s *Service) UpdateSchedule(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: schedule id=%d, modifiedBy=%s", id, req.LastModifiedBy)

	if err := validateUpdateSchedule(req); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	schedule, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rateRepo.ErrScheduleNotFound) {
			s.logger.Warn("UpdateSchedule: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	applyScheduleUpdate(schedule, req)

	if err := s.rateRepo.Update(ctx, schedule); err != nil {
		s.logger.Error("UpdateSchedule: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule id=%d", id)
	return models.FromDomainSchedule(schedule), nil
}

// DeleteSchedule удаляет тарифную сетку
func (s *Service) DeleteSchedule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSchedule: schedule id=%d", id)

	err := s.rateRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, rateRepo.ErrScheduleNotFound) {
			s.logger.Warn("DeleteSchedule: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteSchedule: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSchedule: successfully deleted schedule id=%d", id)
	return nil
}

// applyScheduleUpdate применяет частичное обновление к доменной модели
func applyScheduleUpdate(schedule *domain.RateSchedule, req *models.UpdateScheduleRequest) {
	if req.VehicleType != nil {
		schedule.VehicleType = strings.ToLower(strings.TrimSpace(*req.VehicleType))
	}
	if req.BaseRate != nil {
		schedule.BaseRate = *req.BaseRate
	}
	if req.HourlyRate != nil {
		schedule.HourlyRate = *req.HourlyRate
	}
	if req.DailyRate != nil {
		schedule.DailyRate = *req.DailyRate
	}
	if req.WeeklyRate != nil {
		schedule.WeeklyRate = *req.WeeklyRate
	}
	if req.MonthlyRate != nil {
		schedule.MonthlyRate = *req.MonthlyRate
	}
	if req.PenaltyRate != nil {
		schedule.PenaltyRate = *req.PenaltyRate
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	if req.EffectiveFrom != nil {
		schedule.EffectiveFrom = *req.EffectiveFrom
	}
	if req.EffectiveTo != nil {
		schedule.EffectiveTo = req.EffectiveTo
	}
	schedule.LastModifiedBy = strings.TrimSpace(req.LastModifiedBy)
}

// validateCreateSchedule валидирует запрос на создание тарифной сетки
func validateCreateSchedule(req *models.CreateScheduleRequest) error {
	vehicleType := strings.TrimSpace(req.VehicleType)
	if vehicleType == "" {
		return fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}
	if len(vehicleType) > domain.MaxVehicleTypeLength {
		return fmt.Errorf("%w: vehicleType must be at most %d characters", ErrInvalidInput, domain.MaxVehicleTypeLength)
	}

	if strings.TrimSpace(req.CreatedBy) == "" {
		return fmt.Errorf("%w: createdBy is required", ErrInvalidInput)
	}

	if err := validateRates(req.BaseRate, req.HourlyRate, req.DailyRate, req.WeeklyRate, req.MonthlyRate, req.PenaltyRate); err != nil {
		return err
	}

	if req.EffectiveFrom != nil && req.EffectiveTo != nil && req.EffectiveTo.Before(*req.EffectiveFrom) {
		return fmt.Errorf("%w: effectiveTo must be after effectiveFrom", ErrInvalidInput)
	}

	return nil
}

// validateUpdateSchedule валидирует запрос на обновление тарифной сетки
func validateUpdateSchedule(req *models.UpdateScheduleRequest) error {
	if req.VehicleType != nil && strings.TrimSpace(*req.VehicleType) == "" {
		return fmt.Errorf("%w: vehicleType cannot be empty", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LastModifiedBy) == "" {
		return fmt.Errorf("%w: lastModifiedBy is required", ErrInvalidInput)
	}

	rates := []*int64{req.BaseRate, req.HourlyRate, req.DailyRate, req.WeeklyRate, req.MonthlyRate, req.PenaltyRate}
	for _, rate := range rates {
		if rate != nil && *rate < 0 {
			return fmt.Errorf("%w: rates must be non-negative", ErrInvalidInput)
		}
	}

	return nil
}

// validateRates проверяет, что все ставки неотрицательны
func validateRates(rates ...int64) error {
	for _, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("%w: rates must be non-negative", ErrInvalidInput)
		}
	}
	return nil
}
