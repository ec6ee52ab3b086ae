package facility

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parkirc/parking-service/internal/domain"
	spaceRepo "github.com/parkirc/parking-service/internal/infra/storage/space"
	"github.com/parkirc/parking-service/internal/service/facility/models"
)

// Service сервис для управления парковочными местами
type Service struct {
	spaceRepo SpaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса парковочных мест
func NewService(spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// CreateSpace создает новое парковочное место
func (s *Service) CreateSpace(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("CreateSpace: number=%s, type=%s", req.SpaceNumber, req.SpaceType)

	if err := validateCreateSpace(req); err != nil {
		s.logger.Warn("CreateSpace: validation failed: %v", err)
		return nil, err
	}

	space := &domain.ParkingSpace{
		SpaceNumber: strings.TrimSpace(req.SpaceNumber),
		SpaceType:   strings.ToLower(strings.TrimSpace(req.SpaceType)),
		HourlyRate:  req.HourlyRate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		space.IsActive = *req.IsActive
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateNumber) {
			s.logger.Warn("CreateSpace: duplicate space number %s", req.SpaceNumber)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("CreateSpace: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSpace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSpace: successfully created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetSpace получает парковочное место по ID
func (s *Service) GetSpace(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetSpace: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetSpace: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSpace - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// ListSpaces получает список парковочных мест по фильтру
func (s *Service) ListSpaces(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	filter := domain.SpaceFilter{
		FreeOnly: req.FreeOnly,
	}
	if req.SpaceType != nil {
		spaceType := strings.ToLower(strings.TrimSpace(*req.SpaceType))
		filter.SpaceType = &spaceType
	}

	spaces, err := s.spaceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSpaces: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpaces - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpaces(spaces), nil
}

// UpdateSpace обновляет парковочное место.
// Деактивация занятого места запрещена - сначала нужно оформить выезд
func (s *Service) UpdateSpace(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("UpdateSpace: space id=%d", id)

	if err := validateUpdateSpace(req); err != nil {
		s.logger.Warn("UpdateSpace: validation failed: %v", err)
		return nil, err
	}

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("UpdateSpace: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateSpace: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSpace - repository error: %v", ErrInternal, err)
	}

	if req.SpaceNumber != nil {
		space.SpaceNumber = strings.TrimSpace(*req.SpaceNumber)
	}
	if req.SpaceType != nil {
		space.SpaceType = strings.ToLower(strings.TrimSpace(*req.SpaceType))
	}
	if req.HourlyRate != nil {
		space.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		if !*req.IsActive && space.IsOccupied {
			s.logger.Warn("UpdateSpace: cannot deactivate occupied space id=%d", id)
			return nil, ErrSpaceOccupied
		}
		space.IsActive = *req.IsActive
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateNumber) {
			s.logger.Warn("UpdateSpace: duplicate space number %s", space.SpaceNumber)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("UpdateSpace: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSpace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSpace: successfully updated space id=%d", id)
	return models.FromDomainSpace(space), nil
}

// DeleteSpace удаляет парковочное место. Занятое место удалить нельзя
func (s *Service) DeleteSpace(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSpace: space id=%d", id)

	err := s.spaceRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, spaceRepo.ErrSpaceNotFound):
			s.logger.Warn("DeleteSpace: space id=%d not found", id)
			return ErrSpaceNotFound
		case errors.Is(err, spaceRepo.ErrSpaceOccupied):
			s.logger.Warn("DeleteSpace: space id=%d is occupied", id)
			return ErrSpaceOccupied
		default:
			s.logger.Error("DeleteSpace: repository error for space id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteSpace - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteSpace: successfully deleted space id=%d", id)
	return nil
}

// validateCreateSpace валидирует запрос на создание места
func validateCreateSpace(req *models.CreateSpaceRequest) error {
	number := strings.TrimSpace(req.SpaceNumber)
	if number == "" {
		return fmt.Errorf("%w: spaceNumber is required", ErrInvalidInput)
	}
	if len(number) > domain.MaxSpaceNumberLength {
		return fmt.Errorf("%w: spaceNumber must be at most %d characters", ErrInvalidInput, domain.MaxSpaceNumberLength)
	}

	spaceType := strings.TrimSpace(req.SpaceType)
	if spaceType == "" {
		return fmt.Errorf("%w: spaceType is required", ErrInvalidInput)
	}
	if len(spaceType) > domain.MaxVehicleTypeLength {
		return fmt.Errorf("%w: spaceType must be at most %d characters", ErrInvalidInput, domain.MaxVehicleTypeLength)
	}

	if req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourlyRate must be non-negative", ErrInvalidInput)
	}

	return nil
}

// validateUpdateSpace валидирует запрос на обновление места
func validateUpdateSpace(req *models.UpdateSpaceRequest) error {
	if req.SpaceNumber != nil {
		number := strings.TrimSpace(*req.SpaceNumber)
		if number == "" {
			return fmt.Errorf("%w: spaceNumber cannot be empty", ErrInvalidInput)
		}
		if len(number) > domain.MaxSpaceNumberLength {
			return fmt.Errorf("%w: spaceNumber must be at most %d characters", ErrInvalidInput, domain.MaxSpaceNumberLength)
		}
	}

	if req.SpaceType != nil {
		spaceType := strings.TrimSpace(*req.SpaceType)
		if spaceType == "" {
			return fmt.Errorf("%w: spaceType cannot be empty", ErrInvalidInput)
		}
		if len(spaceType) > domain.MaxVehicleTypeLength {
			return fmt.Errorf("%w: spaceType must be at most %d characters", ErrInvalidInput, domain.MaxVehicleTypeLength)
		}
	}

	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourlyRate must be non-negative", ErrInvalidInput)
	}

	return nil
}
