package operator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/pkg/dbmetrics"
	"github.com/parkirc/parking-service/pkg/psqlbuilder"
)

var operatorColumns = []string{
	"id",
	"name",
	"email",
	"phone_number",
	"badge_number",
	"is_active",
	"join_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с операторами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория операторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового оператора
func (r *Repository) Create(ctx context.Context, o *domain.Operator) (*domain.Operator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("operators").
		Columns("name", "email", "phone_number", "badge_number", "is_active", "join_date").
		Values(o.Name, o.Email, o.PhoneNumber, o.BadgeNumber, o.IsActive, o.JoinDate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// GetByID получает оператора по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Operator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(operatorColumns...).
		From("operators").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOperator(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает всех операторов (сначала активные, по имени)
func (r *Repository) List(ctx context.Context) ([]*domain.Operator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(operatorColumns...).
		From("operators").
		OrderBy("is_active DESC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	operators := make([]*domain.Operator, 0)

	for rows.Next() {
		var o domain.Operator
		var phoneNumber, badgeNumber sql.NullString
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(
			&o.ID,
			&o.Name,
			&o.Email,
			&phoneNumber,
			&badgeNumber,
			&o.IsActive,
			&o.JoinDate,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if phoneNumber.Valid {
			o.PhoneNumber = &phoneNumber.String
		}
		if badgeNumber.Valid {
			o.BadgeNumber = &badgeNumber.String
		}
		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		operators = append(operators, &o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return operators, nil
}

// Update обновляет оператора
func (r *Repository) Update(ctx context.Context, o *domain.Operator) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("operators").
		Set("name", o.Name).
		Set("email", o.Email).
		Set("phone_number", o.PhoneNumber).
		Set("badge_number", o.BadgeNumber).
		Set("is_active", o.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOperatorNotFound
	}

	return nil
}

// Delete удаляет оператора
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("operators").
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
		return ErrOperatorNotFound
	}

	return nil
}

// scanOperator сканирует одну строку в доменную модель
func (r *Repository) scanOperator(row *sql.Row, op string) (*domain.Operator, error) {
	var o domain.Operator
	var phoneNumber, badgeNumber sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Email,
		&phoneNumber,
		&badgeNumber,
		&o.IsActive,
		&o.JoinDate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOperatorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan operator: %v", ErrScanRow, op, err)
	}

	if phoneNumber.Valid {
		o.PhoneNumber = &phoneNumber.String
	}
	if badgeNumber.Valid {
		o.BadgeNumber = &badgeNumber.String
	}
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
