package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/parkirc/parking-service/internal/service/reports/models"
)

// Service сервис отчетов
type Service struct {
	txnRepo TransactionRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(txnRepo TransactionRepository, logger Logger) *Service {
	return &Service{
		txnRepo: txnRepo,
		logger:  logger,
	}
}

// Revenue строит отчет по выручке за период с разбивкой по способам оплаты
func (s *Service) Revenue(ctx context.Context, start, end time.Time) (*models.RevenueReport, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	rows, err := s.txnRepo.RevenueByPaymentMethod(ctx, start, end)
	if err != nil {
		s.logger.Error("Revenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Revenue - repository error: %v", ErrInternal, err)
	}

	report := &models.RevenueReport{
		Period: models.Period{Start: start, End: end},
		Rows:   make([]models.RevenueRow, 0, len(rows)),
	}
	for _, row := range rows {
		report.Total += row.Amount
		report.Rows = append(report.Rows, models.RevenueRow{
			PaymentMethod: row.PaymentMethod,
			Transactions:  row.Transactions,
			Amount:        row.Amount,
		})
	}

	return report, nil
}

// RevenueCSV выгружает отчет по выручке в CSV
func (s *Service) RevenueCSV(ctx context.Context, start, end time.Time) ([]byte, error) {
	report, err := s.Revenue(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"payment_method", "transactions", "amount"}); err != nil {
		return nil, fmt.Errorf("%w: RevenueCSV - write header: %v", ErrInternal, err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.PaymentMethod,
			strconv.FormatInt(row.Transactions, 10),
			strconv.FormatInt(row.Amount, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("%w: RevenueCSV - write record: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: RevenueCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("RevenueCSV: exported %d rows, total=%d", len(report.Rows), report.Total)
	return buf.Bytes(), nil
}

// Occupancy строит отчет по загрузке парковки по дням
func (s *Service) Occupancy(ctx context.Context, start, end time.Time) (*models.OccupancyReport, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	rows, err := s.txnRepo.OccupancyByDay(ctx, start, end)
	if err != nil {
		s.logger.Error("Occupancy: repository error: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - repository error: %v", ErrInternal, err)
	}

	report := &models.OccupancyReport{
		Period: models.Period{Start: start, End: end},
		Rows:   make([]models.OccupancyRow, 0, len(rows)),
	}
	for _, row := range rows {
		report.Rows = append(report.Rows, models.OccupancyRow{
			Date:     row.Date,
			Entries:  row.Entries,
			Revenue:  row.Revenue,
			AvgHours: row.AvgHours,
		})
	}

	return report, nil
}

// VehicleTypes строит отчет по категориям транспорта
func (s *Service) VehicleTypes(ctx context.Context, start, end time.Time) (*models.VehicleTypeReport, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	rows, err := s.txnRepo.StatsByVehicleType(ctx, start, end)
	if err != nil {
		s.logger.Error("VehicleTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: VehicleTypes - repository error: %v", ErrInternal, err)
	}

	report := &models.VehicleTypeReport{
		Period: models.Period{Start: start, End: end},
		Rows:   make([]models.VehicleTypeRow, 0, len(rows)),
	}
	for _, row := range rows {
		report.Rows = append(report.Rows, models.VehicleTypeRow{
			VehicleType: row.VehicleType,
			Count:       row.Count,
			Revenue:     row.Revenue,
		})
	}

	return report, nil
}

// PeakHours строит анализ пиковых часов по въездам
func (s *Service) PeakHours(ctx context.Context, start, end time.Time) (*models.PeakHoursReport, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}

	rows, err := s.txnRepo.CountEntriesByHour(ctx, start, end)
	if err != nil {
		s.logger.Error("PeakHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: PeakHours - repository error: %v", ErrInternal, err)
	}

	report := &models.PeakHoursReport{
		Period: models.Period{Start: start, End: end},
		Rows:   make([]models.PeakHourRow, 0, len(rows)),
	}

	var peakEntries int64
	for _, row := range rows {
		report.Rows = append(report.Rows, models.PeakHourRow{
			Hour:    row.Hour,
			Entries: row.Entries,
		})
		if row.Entries > peakEntries {
			peakEntries = row.Entries
			hour := row.Hour
			report.PeakHour = &hour
		}
	}

	return report, nil
}

// validatePeriod проверяет отчетный период
func validatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	return nil
}
