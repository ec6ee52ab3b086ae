package history

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	txnRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	"github.com/parkirc/parking-service/internal/service/history/models"
)

// csvHeader колонки CSV-выгрузки истории парковок
var csvHeader = []string{
	"transaction_number",
	"ticket_number",
	"plate_number",
	"vehicle_type",
	"space_number",
	"entry_time",
	"exit_time",
	"amount",
	"status",
	"payment_status",
	"payment_method",
}

// Service сервис истории парковок
type Service struct {
	txnRepo TransactionRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса истории
func NewService(txnRepo TransactionRepository, logger Logger) *Service {
	return &Service{
		txnRepo: txnRepo,
		logger:  logger,
	}
}

// Get получает парковочную транзакцию по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.TransactionResponse, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, txnRepo.ErrTransactionNotFound) {
			s.logger.Warn("Get: transaction id=%d not found", id)
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTransaction(txn), nil
}

// List получает историю парковок по фильтру
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	filter, err := buildFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	transactions, err := s.txnRepo.ListWithFilter(ctx, *filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTransactions(transactions), nil
}

// ExportCSV выгружает историю парковок по фильтру в CSV.
// Времена выводятся в RFC 3339, суммы в минорных единицах валюты
func (s *Service) ExportCSV(ctx context.Context, req *models.ListRequest) ([]byte, error) {
	filter, err := buildFilter(req)
	if err != nil {
		s.logger.Warn("ExportCSV: invalid filter: %v", err)
		return nil, err
	}

	transactions, err := s.txnRepo.ListWithFilter(ctx, *filter)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, t := range transactions {
		record := []string{
			t.TransactionNumber,
			t.TicketNumber,
			t.PlateNumber,
			t.VehicleType,
			t.SpaceNumber,
			t.EntryTime.Format(timeLayout),
			formatOptionalTime(t.ExitTime),
			strconv.FormatInt(t.Amount, 10),
			string(t.Status),
			string(t.PaymentStatus),
			formatOptionalString(t.PaymentMethod),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d transactions", len(transactions))
	return buf.Bytes(), nil
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// buildFilter конвертирует запрос в доменный фильтр
func buildFilter(req *models.ListRequest) (*domain.TransactionFilter, error) {
	filter := &domain.TransactionFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Limit:     req.Limit,
	}

	if req.Plate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*req.Plate))
		if plate != "" {
			filter.Plate = &plate
		}
	}

	if req.VehicleType != nil {
		vehicleType := strings.ToLower(strings.TrimSpace(*req.VehicleType))
		if vehicleType != "" {
			filter.VehicleType = &vehicleType
		}
	}

	if req.Status != nil {
		switch domain.TransactionStatus(strings.ToLower(strings.TrimSpace(*req.Status))) {
		case domain.TransactionActive:
			status := domain.TransactionActive
			filter.Status = &status
		case domain.TransactionCompleted:
			status := domain.TransactionCompleted
			filter.Status = &status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", ErrInvalidInput)
	}

	return filter, nil
}

// formatOptionalTime форматирует опциональное время для CSV
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}

// formatOptionalString разворачивает опциональную строку для CSV
func formatOptionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
