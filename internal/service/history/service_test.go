package history

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkirc/parking-service/internal/domain"
	txnRepo "github.com/parkirc/parking-service/internal/infra/storage/transaction"
	"github.com/parkirc/parking-service/internal/service/history/models"
	"github.com/parkirc/parking-service/pkg/ptr"
)

type stubTxnRepo struct {
	transactions []*domain.Transaction
	lastFilter   domain.TransactionFilter
}

func (s *stubTxnRepo) GetByID(_ context.Context, id int64) (*domain.Transaction, error) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, txnRepo.ErrTransactionNotFound
}

func (s *stubTxnRepo) ListWithFilter(_ context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	s.lastFilter = filter
	return s.transactions, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func sampleTransactions() []*domain.Transaction {
	entry := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	return []*domain.Transaction{
		{
			ID:                2,
			TransactionNumber: "TRX-20250602-BBBBBBBB",
			TicketNumber:      "TKT-20250602-BBBBBBBB",
			PlateNumber:       "B 456 CD",
			VehicleType:       "car",
			SpaceNumber:       "A-02",
			EntryTime:         entry.Add(time.Hour),
			HourlyRate:        1500,
			Status:            domain.TransactionActive,
			PaymentStatus:     domain.PaymentPending,
		},
		{
			ID:                1,
			TransactionNumber: "TRX-20250602-AAAAAAAA",
			TicketNumber:      "TKT-20250602-AAAAAAAA",
			PlateNumber:       "A 123 BC",
			VehicleType:       "car",
			SpaceNumber:       "A-01",
			EntryTime:         entry,
			ExitTime:          ptr.Ptr(entry.Add(3 * time.Hour)),
			HourlyRate:        1500,
			Amount:            4500,
			Status:            domain.TransactionCompleted,
			PaymentStatus:     domain.PaymentPaid,
			PaymentMethod:     ptr.Ptr("cash"),
		},
	}
}

func TestList_NormalizesFilter(t *testing.T) {
	repo := &stubTxnRepo{transactions: sampleTransactions()}
	svc := NewService(repo, noopLogger{})

	plate := "  a 123 "
	vehicleType := " Car "
	status := "Completed"

	resp, err := svc.List(context.Background(), &models.ListRequest{
		Plate:       &plate,
		VehicleType: &vehicleType,
		Status:      &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	require.NotNil(t, repo.lastFilter.Plate)
	assert.Equal(t, "A 123", *repo.lastFilter.Plate)
	require.NotNil(t, repo.lastFilter.VehicleType)
	assert.Equal(t, "car", *repo.lastFilter.VehicleType)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.TransactionCompleted, *repo.lastFilter.Status)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&stubTxnRepo{}, noopLogger{})

	status := "parked"
	_, err := svc.List(context.Background(), &models.ListRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err = svc.List(context.Background(), &models.ListRequest{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExportCSV(t *testing.T) {
	repo := &stubTxnRepo{transactions: sampleTransactions()}
	svc := NewService(repo, noopLogger{})

	data, err := svc.ExportCSV(context.Background(), &models.ListRequest{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])

	// Открытая стоянка - пустые exit_time и payment_method
	assert.Equal(t, "TRX-20250602-BBBBBBBB", records[1][0])
	assert.Empty(t, records[1][6])
	assert.Equal(t, "0", records[1][7])
	assert.Empty(t, records[1][10])

	// Завершенная стоянка
	assert.Equal(t, "TRX-20250602-AAAAAAAA", records[2][0])
	assert.Equal(t, "2025-06-02T08:00:00Z", records[2][5])
	assert.Equal(t, "2025-06-02T11:00:00Z", records[2][6])
	assert.Equal(t, "4500", records[2][7])
	assert.Equal(t, "completed", records[2][8])
	assert.Equal(t, "cash", records[2][10])
}

func TestGet(t *testing.T) {
	repo := &stubTxnRepo{transactions: sampleTransactions()}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "TRX-20250602-AAAAAAAA", resp.TransactionNumber)
	assert.Equal(t, int64(4500), resp.Amount)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestExportCSV_EmptyHistory(t *testing.T) {
	svc := NewService(&stubTxnRepo{}, noopLogger{})

	data, err := svc.ExportCSV(context.Background(), &models.ListRequest{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}
