package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/service/audit/models"
)

// Service сервис журнала операций
type Service struct {
	journalRepo JournalRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(journalRepo JournalRepository, logger Logger) *Service {
	return &Service{
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// List получает записи журнала по фильтру, от новых к старым
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	filter := domain.JournalFilter{
		OperatorID: req.OperatorID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Limit:      req.Limit,
	}

	if req.Action != nil {
		action := strings.ToLower(strings.TrimSpace(*req.Action))
		switch action {
		case domain.JournalActionCheckIn, domain.JournalActionCheckOut:
			filter.Action = &action
		default:
			s.logger.Warn("List: unknown action %q", *req.Action)
			return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, *req.Action)
		}
	}

	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", ErrInvalidInput)
	}

	entries, err := s.journalRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ListResponse{
		Entries: make([]models.EntryResponse, 0, len(entries)),
		Total:   len(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.EntryResponse{
			ID:          e.ID,
			Action:      e.Action,
			Description: e.Description,
			OperatorID:  e.OperatorID,
			Timestamp:   e.Timestamp,
		})
	}

	return resp, nil
}
