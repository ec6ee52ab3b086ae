package space

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/pkg/dbmetrics"
	"github.com/parkirc/parking-service/pkg/psqlbuilder"
)

// spaceColumns колонки таблицы parking_spaces в порядке сканирования
var spaceColumns = []string{
	"id",
	"space_number",
	"space_type",
	"is_active",
	"is_occupied",
	"last_occupied_time",
	"hourly_rate",
	"current_vehicle_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с парковочными местами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковочных мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое парковочное место
func (r *Repository) Create(ctx context.Context, space *domain.ParkingSpace) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_spaces").
		Columns(
			"space_number",
			"space_type",
			"is_active",
			"hourly_rate",
		).
		Values(
			space.SpaceNumber,
			space.SpaceType,
			space.IsActive,
			space.HourlyRate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает парковочное место по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("parking_spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSpace(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает список парковочных мест с опциональной фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spaceColumns...).
		From("parking_spaces").
		OrderBy("space_number ASC, id ASC")

	if filter.SpaceType != nil {
		selectBuilder = selectBuilder.Where("LOWER(space_type) = LOWER(?)", *filter.SpaceType)
	}
	if filter.FreeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_occupied": false, "is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpaces(rows)
}

// ListFreeByType получает свободные активные места для категории транспорта
// Внутри транзакции строки блокируются FOR UPDATE - это часть контракта
// атомарности выделения места (read-select-mark как единое целое)
func (r *Repository) ListFreeByType(ctx context.Context, vehicleType string) ([]*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spaceColumns...).
		From("parking_spaces").
		Where(squirrel.Eq{"is_occupied": false, "is_active": true}).
		Where("LOWER(space_type) = LOWER(?)", vehicleType).
		OrderBy("last_occupied_time ASC NULLS FIRST, space_number ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFreeByType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFreeByType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpaces(rows)
}

// Update обновляет атрибуты парковочного места (номер, тип, активность, тариф)
func (r *Repository) Update(ctx context.Context, space *domain.ParkingSpace) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spaces").
		Set("space_number", space.SpaceNumber).
		Set("space_type", space.SpaceType).
		Set("is_active", space.IsActive).
		Set("hourly_rate", space.HourlyRate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Update")
}

// MarkOccupied помечает место занятым указанным транспортом
func (r *Repository) MarkOccupied(ctx context.Context, spaceID, vehicleID int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spaces").
		Set("is_occupied", true).
		Set("current_vehicle_id", vehicleID).
		Set("last_occupied_time", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": spaceID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkOccupied - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkOccupied - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "MarkOccupied")
}

// Release освобождает место после выезда транспорта
func (r *Repository) Release(ctx context.Context, spaceID int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spaces").
		Set("is_occupied", false).
		Set("current_vehicle_id", nil).
		Set("last_occupied_time", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": spaceID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Release")
}

// Delete удаляет парковочное место
// Занятое место удалить нельзя - сначала транспорт должен выехать
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	space, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if space.IsOccupied {
		return ErrSpaceOccupied
	}

	query, args, err := psqlbuilder.Delete("parking_spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Delete")
}

// CountByOccupancy возвращает количество всех и занятых мест
func (r *Repository) CountByOccupancy(ctx context.Context) (total int64, occupied int64, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE is_occupied)",
	).
		From("parking_spaces").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: CountByOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&total, &occupied)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: CountByOccupancy - scan counts: %v", ErrScanRow, err)
	}

	return total, occupied, nil
}

// scanSpace сканирует одну строку в доменную модель
func (r *Repository) scanSpace(row *sql.Row, op string) (*domain.ParkingSpace, error) {
	var space domain.ParkingSpace
	var lastOccupied sql.NullTime
	var currentVehicleID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.SpaceNumber,
		&space.SpaceType,
		&space.IsActive,
		&space.IsOccupied,
		&lastOccupied,
		&space.HourlyRate,
		&currentVehicleID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan space: %v", ErrScanRow, op, err)
	}

	if lastOccupied.Valid {
		space.LastOccupiedTime = &lastOccupied.Time
	}
	if currentVehicleID.Valid {
		space.CurrentVehicleID = &currentVehicleID.Int64
	}
	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// scanSpaces сканирует результаты запроса в слайс мест
func (r *Repository) scanSpaces(rows *sql.Rows) ([]*domain.ParkingSpace, error) {
	spaces := make([]*domain.ParkingSpace, 0)

	for rows.Next() {
		var space domain.ParkingSpace
		var lastOccupied sql.NullTime
		var currentVehicleID sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&space.ID,
			&space.SpaceNumber,
			&space.SpaceType,
			&space.IsActive,
			&space.IsOccupied,
			&lastOccupied,
			&space.HourlyRate,
			&currentVehicleID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSpaces - scan row: %v", ErrScanRow, err)
		}

		if lastOccupied.Valid {
			space.LastOccupiedTime = &lastOccupied.Time
		}
		if currentVehicleID.Valid {
			space.CurrentVehicleID = &currentVehicleID.Int64
		}
		space.CreatedAt = createdAt.Time
		space.UpdatedAt = updatedAt.Time

		spaces = append(spaces, &space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpaces - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

func (r *Repository) requireRowsAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}
