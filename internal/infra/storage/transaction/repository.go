package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/pkg/dbmetrics"
	"github.com/parkirc/parking-service/pkg/psqlbuilder"
)

var transactionColumns = []string{
	"id",
	"transaction_number",
	"ticket_number",
	"vehicle_id",
	"space_id",
	"shift_id",
	"entry_time",
	"exit_time",
	"hourly_rate",
	"amount",
	"status",
	"payment_status",
	"payment_method",
	"payment_time",
	"plate_number",
	"vehicle_type",
	"space_number",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с парковочными транзакциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает открытую транзакцию при въезде
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_transactions").
		Columns(
			"transaction_number",
			"ticket_number",
			"vehicle_id",
			"space_id",
			"shift_id",
			"entry_time",
			"hourly_rate",
			"amount",
			"status",
			"payment_status",
			"plate_number",
			"vehicle_type",
			"space_number",
		).
		Values(
			t.TransactionNumber,
			t.TicketNumber,
			t.VehicleID,
			t.SpaceID,
			t.ShiftID,
			t.EntryTime,
			t.HourlyRate,
			t.Amount,
			t.Status,
			t.PaymentStatus,
			t.PlateNumber,
			t.VehicleType,
			t.SpaceNumber,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает транзакцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("parking_transactions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTransaction(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetOpenByVehicleID получает открытую транзакцию транспорта
func (r *Repository) GetOpenByVehicleID(ctx context.Context, vehicleID int64) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(transactionColumns...).
		From("parking_transactions").
		Where(squirrel.Eq{"vehicle_id": vehicleID, "status": domain.TransactionActive}).
		OrderBy("entry_time DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByVehicleID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTransaction(executor.QueryRowContext(ctx, query, args...), "GetOpenByVehicleID")
}

// Close закрывает транзакцию при выезде: фиксирует время, сумму и оплату
func (r *Repository) Close(ctx context.Context, id int64, exitTime time.Time, amount int64, paymentMethod string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_transactions").
		Set("exit_time", exitTime).
		Set("amount", amount).
		Set("status", domain.TransactionCompleted).
		Set("payment_status", domain.PaymentPaid).
		Set("payment_method", paymentMethod).
		Set("payment_time", exitTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.TransactionActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// ListWithFilter получает историю транзакций с гибкой фильтрацией
// Поддерживает поиск по госномеру, период, категорию и статус
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(transactionColumns...).
		From("parking_transactions").
		OrderBy("entry_time DESC, id DESC")

	if filter.Plate != nil {
		selectBuilder = selectBuilder.Where("plate_number ILIKE ?", "%"+*filter.Plate+"%")
	}
	if filter.VehicleType != nil {
		selectBuilder = selectBuilder.Where("LOWER(vehicle_type) = LOWER(?)", *filter.VehicleType)
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"entry_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"entry_time": *filter.EndDate})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTransactions(rows)
}

// SumRevenueBetween возвращает сумму оплаченных транзакций за период
// (по времени оплаты, включительно с start, исключая end)
func (r *Repository) SumRevenueBetween(ctx context.Context, start, end time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("parking_transactions").
		Where(squirrel.Eq{"payment_status": domain.PaymentPaid}).
		Where(squirrel.GtOrEq{"payment_time": start}).
		Where(squirrel.Lt{"payment_time": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumRevenueBetween - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumRevenueBetween - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

// RevenueByPaymentMethod возвращает выручку за период в разрезе способов оплаты
func (r *Repository) RevenueByPaymentMethod(ctx context.Context, start, end time.Time) ([]*domain.RevenueByMethod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(payment_method, 'unknown')",
		"COUNT(*)",
		"COALESCE(SUM(amount), 0)",
	).
		From("parking_transactions").
		Where(squirrel.Eq{"payment_status": domain.PaymentPaid}).
		Where(squirrel.GtOrEq{"payment_time": start}).
		Where(squirrel.Lt{"payment_time": end}).
		GroupBy("COALESCE(payment_method, 'unknown')").
		OrderBy("SUM(amount) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByPaymentMethod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByPaymentMethod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.RevenueByMethod, 0)
	for rows.Next() {
		var row domain.RevenueByMethod
		if err := rows.Scan(&row.PaymentMethod, &row.Transactions, &row.Amount); err != nil {
			return nil, fmt.Errorf("%w: RevenueByPaymentMethod - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RevenueByPaymentMethod - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// OccupancyByDay возвращает по каждому дню периода количество въездов,
// выручку и среднюю длительность стоянки в часах
func (r *Repository) OccupancyByDay(ctx context.Context, start, end time.Time) ([]*domain.OccupancyByDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"DATE_TRUNC('day', entry_time) AS day",
		"COUNT(*)",
	).
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE payment_status = ?), 0)", string(domain.PaymentPaid))).
		Column("COALESCE(AVG(EXTRACT(EPOCH FROM (exit_time - entry_time)) / 3600.0) FILTER (WHERE exit_time IS NOT NULL), 0)").
		From("parking_transactions").
		Where(squirrel.GtOrEq{"entry_time": start}).
		Where(squirrel.Lt{"entry_time": end}).
		GroupBy("DATE_TRUNC('day', entry_time)").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: OccupancyByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupancyByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.OccupancyByDay, 0)
	for rows.Next() {
		var row domain.OccupancyByDay
		if err := rows.Scan(&row.Date, &row.Entries, &row.Revenue, &row.AvgHours); err != nil {
			return nil, fmt.Errorf("%w: OccupancyByDay - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupancyByDay - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// StatsByVehicleType возвращает за период количество транзакций и выручку
// в разрезе категорий транспорта
func (r *Repository) StatsByVehicleType(ctx context.Context, start, end time.Time) ([]*domain.VehicleTypeStat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"LOWER(vehicle_type)",
		"COUNT(*)",
		"COALESCE(SUM(amount), 0)",
	).
		From("parking_transactions").
		Where(squirrel.GtOrEq{"entry_time": start}).
		Where(squirrel.Lt{"entry_time": end}).
		GroupBy("LOWER(vehicle_type)").
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: StatsByVehicleType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: StatsByVehicleType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.VehicleTypeStat, 0)
	for rows.Next() {
		var row domain.VehicleTypeStat
		if err := rows.Scan(&row.VehicleType, &row.Count, &row.Revenue); err != nil {
			return nil, fmt.Errorf("%w: StatsByVehicleType - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: StatsByVehicleType - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountEntriesByHour возвращает количество въездов по часам за период
func (r *Repository) CountEntriesByHour(ctx context.Context, start, end time.Time) ([]*domain.HourCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"EXTRACT(HOUR FROM entry_time)::int AS hour",
		"COUNT(*)",
	).
		From("parking_transactions").
		Where(squirrel.GtOrEq{"entry_time": start}).
		Where(squirrel.Lt{"entry_time": end}).
		GroupBy("EXTRACT(HOUR FROM entry_time)").
		OrderBy("hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountEntriesByHour - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountEntriesByHour - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.HourCount, 0)
	for rows.Next() {
		var row domain.HourCount
		if err := rows.Scan(&row.Hour, &row.Entries); err != nil {
			return nil, fmt.Errorf("%w: CountEntriesByHour - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountEntriesByHour - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// scanTransaction сканирует одну строку в доменную модель
func (r *Repository) scanTransaction(row *sql.Row, op string) (*domain.Transaction, error) {
	var t domain.Transaction
	var shiftID sql.NullInt64
	var exitTime, paymentTime sql.NullTime
	var paymentMethod sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.TransactionNumber,
		&t.TicketNumber,
		&t.VehicleID,
		&t.SpaceID,
		&shiftID,
		&t.EntryTime,
		&exitTime,
		&t.HourlyRate,
		&t.Amount,
		&t.Status,
		&t.PaymentStatus,
		&paymentMethod,
		&paymentTime,
		&t.PlateNumber,
		&t.VehicleType,
		&t.SpaceNumber,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan transaction: %v", ErrScanRow, op, err)
	}

	if shiftID.Valid {
		t.ShiftID = &shiftID.Int64
	}
	if exitTime.Valid {
		t.ExitTime = &exitTime.Time
	}
	if paymentMethod.Valid {
		t.PaymentMethod = &paymentMethod.String
	}
	if paymentTime.Valid {
		t.PaymentTime = &paymentTime.Time
	}
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// scanTransactions сканирует результаты запроса в слайс транзакций
func (r *Repository) scanTransactions(rows *sql.Rows) ([]*domain.Transaction, error) {
	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		var t domain.Transaction
		var shiftID sql.NullInt64
		var exitTime, paymentTime sql.NullTime
		var paymentMethod sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.TransactionNumber,
			&t.TicketNumber,
			&t.VehicleID,
			&t.SpaceID,
			&shiftID,
			&t.EntryTime,
			&exitTime,
			&t.HourlyRate,
			&t.Amount,
			&t.Status,
			&t.PaymentStatus,
			&paymentMethod,
			&paymentTime,
			&t.PlateNumber,
			&t.VehicleType,
			&t.SpaceNumber,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTransactions - scan row: %v", ErrScanRow, err)
		}

		if shiftID.Valid {
			t.ShiftID = &shiftID.Int64
		}
		if exitTime.Valid {
			t.ExitTime = &exitTime.Time
		}
		if paymentMethod.Valid {
			t.PaymentMethod = &paymentMethod.String
		}
		if paymentTime.Valid {
			t.PaymentTime = &paymentTime.Time
		}
		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTransactions - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}
