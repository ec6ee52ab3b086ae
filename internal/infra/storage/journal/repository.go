package journal

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/pkg/dbmetrics"
	"github.com/parkirc/parking-service/pkg/psqlbuilder"
)

var journalColumns = []string{
	"id",
	"action",
	"description",
	"operator_id",
	"created_at",
}

// Repository репозиторий для работы с журналом операций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал
func (r *Repository) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("journal_entries").
		Columns("action", "description", "operator_id", "created_at").
		Values(e.Action, e.Description, e.OperatorID, e.Timestamp).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// List получает записи журнала по фильтру, от новых к старым
func (r *Repository) List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(journalColumns...).
		From("journal_entries").
		OrderBy("created_at DESC, id DESC")

	if filter.Action != nil {
		builder = builder.Where(squirrel.Eq{"action": *filter.Action})
	}
	if filter.OperatorID != nil {
		builder = builder.Where(squirrel.Eq{"operator_id": *filter.OperatorID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"created_at": *filter.EndDate})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.JournalEntry, 0)

	for rows.Next() {
		var e domain.JournalEntry

		err = rows.Scan(&e.ID, &e.Action, &e.Description, &e.OperatorID, &e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		entries = append(entries, &e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
