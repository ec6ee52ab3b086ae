package rate

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

var scheduleColumns = []string{
	"id",
	"vehicle_type",
	"base_rate",
	"hourly_rate",
	"daily_rate",
	"weekly_rate",
	"monthly_rate",
	"penalty_rate",
	"is_active",
	"effective_from",
	"effective_to",
	"created_by",
	"last_modified_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с тарифными сетками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую тарифную сетку
func (r *Repository) Create(ctx context.Context, s *domain.RateSchedule) (*domain.RateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rate_schedules").
		Columns(
			"vehicle_type",
			"base_rate",
			"hourly_rate",
			"daily_rate",
			"weekly_rate",
			"monthly_rate",
			"penalty_rate",
			"is_active",
			"effective_from",
			"effective_to",
			"created_by",
			"last_modified_by",
		).
		Values(
			s.VehicleType,
			s.BaseRate,
			s.HourlyRate,
			s.DailyRate,
			s.WeeklyRate,
			s.MonthlyRate,
			s.PenaltyRate,
			s.IsActive,
			s.EffectiveFrom,
			s.EffectiveTo,
			s.CreatedBy,
			s.LastModifiedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает тарифную сетку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("rate_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows := executor.QueryRowContext(ctx, query, args...)
	return r.scanSchedule(rows, "GetByID")
}

// List получает все тарифные сетки (сначала действующие, затем по категории)
func (r *Repository) List(ctx context.Context) ([]*domain.RateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("rate_schedules").
		OrderBy("is_active DESC, vehicle_type ASC, effective_from DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// ListEffective получает активные тарифные сетки категории, действующие
// в указанный момент, от самой свежей effective_from к более старым
// Вызывающая сторона берёт первую - это и есть разрешённый тариф
func (r *Repository) ListEffective(ctx context.Context, vehicleType string, at time.Time) ([]*domain.RateSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("rate_schedules").
		Where(squirrel.Eq{"is_active": true}).
		Where("LOWER(vehicle_type) = LOWER(?)", vehicleType).
		Where(squirrel.LtOrEq{"effective_from": at}).
		Where(squirrel.Or{
			squirrel.Eq{"effective_to": nil},
			squirrel.GtOrEq{"effective_to": at},
		}).
		OrderBy("effective_from DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEffective - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEffective - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// Update обновляет тарифную сетку
func (r *Repository) Update(ctx context.Context, s *domain.RateSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rate_schedules").
		Set("vehicle_type", s.VehicleType).
		Set("base_rate", s.BaseRate).
		Set("hourly_rate", s.HourlyRate).
		Set("daily_rate", s.DailyRate).
		Set("weekly_rate", s.WeeklyRate).
		Set("monthly_rate", s.MonthlyRate).
		Set("penalty_rate", s.PenaltyRate).
		Set("is_active", s.IsActive).
		Set("effective_from", s.EffectiveFrom).
		Set("effective_to", s.EffectiveTo).
		Set("last_modified_by", s.LastModifiedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete удаляет тарифную сетку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rate_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// scanSchedule сканирует одну строку в доменную модель
func (r *Repository) scanSchedule(row *sql.Row, op string) (*domain.RateSchedule, error) {
	var s domain.RateSchedule
	var effectiveTo sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.VehicleType,
		&s.BaseRate,
		&s.HourlyRate,
		&s.DailyRate,
		&s.WeeklyRate,
		&s.MonthlyRate,
		&s.PenaltyRate,
		&s.IsActive,
		&s.EffectiveFrom,
		&effectiveTo,
		&s.CreatedBy,
		&s.LastModifiedBy,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan schedule: %v", ErrScanRow, op, err)
	}

	if effectiveTo.Valid {
		s.EffectiveTo = &effectiveTo.Time
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSchedules сканирует результаты запроса в слайс тарифов
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.RateSchedule, error) {
	schedules := make([]*domain.RateSchedule, 0)

	for rows.Next() {
		var s domain.RateSchedule
		var effectiveTo sql.NullTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.VehicleType,
			&s.BaseRate,
			&s.HourlyRate,
			&s.DailyRate,
			&s.WeeklyRate,
			&s.MonthlyRate,
			&s.PenaltyRate,
			&s.IsActive,
			&s.EffectiveFrom,
			&effectiveTo,
			&s.CreatedBy,
			&s.LastModifiedBy,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		if effectiveTo.Valid {
			s.EffectiveTo = &effectiveTo.Time
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
