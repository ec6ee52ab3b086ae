package vehicle

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

var vehicleColumns = []string{
	"id",
	"plate_number",
	"vehicle_type",
	"driver_name",
	"phone_number",
	"entry_time",
	"exit_time",
	"space_id",
	"shift_id",
	"is_parked",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с транспортом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транспорта
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о въехавшем транспорте
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"plate_number",
			"vehicle_type",
			"driver_name",
			"phone_number",
			"entry_time",
			"space_id",
			"shift_id",
			"is_parked",
		).
		Values(
			v.PlateNumber,
			v.VehicleType,
			v.DriverName,
			v.PhoneNumber,
			v.EntryTime,
			v.SpaceID,
			v.ShiftID,
			v.IsParked,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает транспорт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVehicle(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetParkedByPlate получает припаркованный транспорт по госномеру
// Внутри транзакции строка блокируется FOR UPDATE, чтобы два параллельных
// выезда не закрыли одну стоянку дважды
func (r *Repository) GetParkedByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where("UPPER(plate_number) = UPPER(?)", plate).
		Where(squirrel.Eq{"is_parked": true}).
		OrderBy("entry_time DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetParkedByPlate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVehicle(executor.QueryRowContext(ctx, query, args...), "GetParkedByPlate")
}

// MarkExited помечает транспорт выехавшим
func (r *Repository) MarkExited(ctx context.Context, id int64, exitTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("is_parked", false).
		Set("exit_time", exitTime).
		Set("space_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkExited - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkExited - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkExited - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// CountParkedByType возвращает распределение припаркованного транспорта
// по категориям (для дашборда)
func (r *Repository) CountParkedByType(ctx context.Context) ([]*domain.VehicleTypeStat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"LOWER(vehicle_type)",
		"COUNT(*)",
	).
		From("vehicles").
		Where(squirrel.Eq{"is_parked": true}).
		GroupBy("LOWER(vehicle_type)").
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountParkedByType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountParkedByType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]*domain.VehicleTypeStat, 0)
	for rows.Next() {
		var stat domain.VehicleTypeStat
		if err := rows.Scan(&stat.VehicleType, &stat.Count); err != nil {
			return nil, fmt.Errorf("%w: CountParkedByType - scan row: %v", ErrScanRow, err)
		}
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountParkedByType - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// scanVehicle сканирует одну строку в доменную модель
func (r *Repository) scanVehicle(row *sql.Row, op string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var driverName, phoneNumber sql.NullString
	var exitTime sql.NullTime
	var spaceID, shiftID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.PlateNumber,
		&v.VehicleType,
		&driverName,
		&phoneNumber,
		&v.EntryTime,
		&exitTime,
		&spaceID,
		&shiftID,
		&v.IsParked,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan vehicle: %v", ErrScanRow, op, err)
	}

	if driverName.Valid {
		v.DriverName = &driverName.String
	}
	if phoneNumber.Valid {
		v.PhoneNumber = &phoneNumber.String
	}
	if exitTime.Valid {
		v.ExitTime = &exitTime.Time
	}
	if spaceID.Valid {
		v.SpaceID = &spaceID.Int64
	}
	if shiftID.Valid {
		v.ShiftID = &shiftID.Int64
	}
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
