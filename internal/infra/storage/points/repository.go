package points

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const table = "points_history"

// Repository журнал изменений баллов, записи только добавляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала баллов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
func (r *Repository) Append(ctx context.Context, entry *domain.PointsHistory) (*domain.PointsHistory, error) {
	if !entry.IsConsistent() {
		return nil, fmt.Errorf("%w: %d -> %d, diff %d", ErrInconsistentEntry, entry.OldPoints, entry.NewPoints, entry.Difference)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("customer_id", "old_points", "new_points", "difference", "reason", "changed_by").
		Values(entry.CustomerID, entry.OldPoints, entry.NewPoints, entry.Difference, entry.Reason, entry.ChangedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}
	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// ListByCustomer возвращает журнал клиента, сначала новые записи
// limit <= 0 означает без ограничения
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64, limit int) ([]*domain.PointsHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listByCustomerQuery(customerID, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	history := make([]*domain.PointsHistory, 0)
	for rows.Next() {
		var entry domain.PointsHistory
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.OldPoints,
			&entry.NewPoints,
			&entry.Difference,
			&entry.Reason,
			&entry.ChangedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCustomer - scan row: %v", ErrScanRow, err)
		}
		entry.CreatedAt = createdAt.Time

		history = append(history, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - rows error: %v", ErrScanRow, err)
	}

	return history, nil
}

func listByCustomerQuery(customerID int64, limit int) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"id",
		"customer_id",
		"old_points",
		"new_points",
		"difference",
		"reason",
		"changed_by",
		"created_at",
	).
		From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return builder
}
