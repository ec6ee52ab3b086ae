package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	operatorRepo "github.com/parkirc/parking-service/internal/infra/storage/operator"
	shiftRepo "github.com/parkirc/parking-service/internal/infra/storage/shift"
	"github.com/parkirc/parking-service/internal/service/staff/models"
)

// Service сервис для управления сменами и операторами
type Service struct {
	shiftRepo    ShiftRepository
	operatorRepo OperatorRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса персонала
func NewService(shiftRepo ShiftRepository, operatorRepo OperatorRepository, logger Logger) *Service {
	return &Service{
		shiftRepo:    shiftRepo,
		operatorRepo: operatorRepo,
		logger:       logger,
	}
}

// CreateShift создает новую смену.
// Окно смены может пересекать полночь: 22:00-06:00 - валидная смена
func (s *Service) CreateShift(ctx context.Context, req *models.CreateShiftRequest) (*models.ShiftResponse, error) {
	s.logger.Info("CreateShift: name=%s, window=%s-%s", req.Name, req.StartTime, req.EndTime)

	if err := validateCreateShift(req); err != nil {
		s.logger.Warn("CreateShift: validation failed: %v", err)
		return nil, err
	}

	shift := &domain.Shift{
		Name:      strings.TrimSpace(req.Name),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	created, err := s.shiftRepo.Create(ctx, shift)
	if err != nil {
		s.logger.Error("CreateShift: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateShift - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateShift: successfully created shift id=%d", created.ID)
	return models.FromDomainShift(created), nil
}

// GetShift получает смену по ID
func (s *Service) GetShift(ctx context.Context, id int64) (*models.ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("GetShift: shift id=%d not found", id)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("GetShift: repository error for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetShift - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShift(shift), nil
}

// ListShifts получает все смены
func (s *Service) ListShifts(ctx context.Context) (*models.ShiftListResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListShifts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListShifts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShifts(shifts), nil
}

// UpdateShift обновляет смену
func (s *Service) UpdateShift(ctx context.Context, id int64, req *models.UpdateShiftRequest) (*models.ShiftResponse, error) {
	s.logger.Info("UpdateShift: shift id=%d", id)

	if err := validateUpdateShift(req); err != nil {
		s.logger.Warn("UpdateShift: validation failed: %v", err)
		return nil, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("UpdateShift: shift id=%d not found", id)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("UpdateShift: repository error for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateShift - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		shift.Name = strings.TrimSpace(*req.Name)
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		s.logger.Error("UpdateShift: repository error for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateShift - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateShift: successfully updated shift id=%d", id)
	return models.FromDomainShift(shift), nil
}

// DeleteShift удаляет смену
func (s *Service) DeleteShift(ctx context.Context, id int64) error {
	s.logger.Info("DeleteShift: shift id=%d", id)

	err := s.shiftRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("DeleteShift: shift id=%d not found", id)
			return ErrShiftNotFound
		}
		s.logger.Error("DeleteShift: repository error for shift id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteShift - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteShift: successfully deleted shift id=%d", id)
	return nil
}

// CreateOperator создает нового оператора
func (s *Service) CreateOperator(ctx context.Context, req *models.CreateOperatorRequest) (*models.OperatorResponse, error) {
	s.logger.Info("CreateOperator: name=%s, email=%s", req.Name, req.Email)

	if err := validateCreateOperator(req); err != nil {
		s.logger.Warn("CreateOperator: validation failed: %v", err)
		return nil, err
	}

	operator := &domain.Operator{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber: req.PhoneNumber,
		BadgeNumber: req.BadgeNumber,
		IsActive:    true,
		JoinDate:    time.Now(),
	}

	created, err := s.operatorRepo.Create(ctx, operator)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrDuplicateEmail) {
			s.logger.Warn("CreateOperator: duplicate email %s", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("CreateOperator: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateOperator - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateOperator: successfully created operator id=%d", created.ID)
	return models.FromDomainOperator(created), nil
}

// GetOperator получает оператора по ID
func (s *Service) GetOperator(ctx context.Context, id int64) (*models.OperatorResponse, error) {
	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			s.logger.Warn("GetOperator: operator id=%d not found", id)
			return nil, ErrOperatorNotFound
		}
		s.logger.Error("GetOperator: repository error for operator id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetOperator - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOperator(operator), nil
}

// ListOperators получает всех операторов
func (s *Service) ListOperators(ctx context.Context) (*models.OperatorListResponse, error) {
	operators, err := s.operatorRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListOperators: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOperators - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOperators(operators), nil
}

// UpdateOperator обновляет оператора
func (s *Service) UpdateOperator(ctx context.Context, id int64, req *models.UpdateOperatorRequest) (*models.OperatorResponse, error) {
	s.logger.Info("UpdateOperator: operator id=%d", id)

	if err := validateUpdateOperator(req); err != nil {
		s.logger.Warn("UpdateOperator: validation failed: %v", err)
		return nil, err
	}

	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			s.logger.Warn("UpdateOperator: operator id=%d not found", id)
			return nil, ErrOperatorNotFound
		}
		s.logger.Error("UpdateOperator: repository error for operator id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateOperator - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		operator.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		operator.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.PhoneNumber != nil {
		operator.PhoneNumber = req.PhoneNumber
	}
	if req.BadgeNumber != nil {
		operator.BadgeNumber = req.BadgeNumber
	}
	if req.IsActive != nil {
		operator.IsActive = *req.IsActive
	}

	if err := s.operatorRepo.Update(ctx, operator); err != nil {
		if errors.Is(err, operatorRepo.ErrDuplicateEmail) {
			s.logger.Warn("UpdateOperator: duplicate email %s", operator.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("UpdateOperator: repository error for operator id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateOperator - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateOperator: successfully updated operator id=%d", id)
	return models.FromDomainOperator(operator), nil
}

// DeleteOperator удаляет оператора
func (s *Service) DeleteOperator(ctx context.Context, id int64) error {
	s.logger.Info("DeleteOperator: operator id=%d", id)

	err := s.operatorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			s.logger.Warn("DeleteOperator: operator id=%d not found", id)
			return ErrOperatorNotFound
		}
		s.logger.Error("DeleteOperator: repository error for operator id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteOperator - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOperator: successfully deleted operator id=%d", id)
	return nil
}

// validateCreateShift валидирует запрос на создание смены
func validateCreateShift(req *models.CreateShiftRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxShiftNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxShiftNameLength)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateUpdateShift валидирует запрос на обновление смены
func validateUpdateShift(req *models.UpdateShiftRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxShiftNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxShiftNameLength)
		}
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}
	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateCreateOperator валидирует запрос на создание оператора
func validateCreateOperator(req *models.CreateOperatorRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxOperatorNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxOperatorNameLength)
	}

	return validateEmail(req.Email)
}

// validateUpdateOperator валидирует запрос на обновление оператора
func validateUpdateOperator(req *models.UpdateOperatorRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxOperatorNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxOperatorNameLength)
		}
	}

	if req.Email != nil {
		return validateEmail(*req.Email)
	}

	return nil
}

// validateEmail проверяет базовую форму email
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return nil
}
