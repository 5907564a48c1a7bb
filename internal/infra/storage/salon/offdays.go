package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const offDaysTable = "off_days"

// ListOffDays возвращает все правила выходных: сначала еженедельные, затем по датам
func (r *Repository) ListOffDays(ctx context.Context) (domain.OffDays, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "kind", "day_of_week", "specific_date", "description", "created_at").
		From(offDaysTable).
		OrderBy("kind DESC", "day_of_week ASC", "specific_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOffDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOffDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offDays := make(domain.OffDays, 0)
	for rows.Next() {
		day, err := scanOffDay(rows)
		if err != nil {
			return nil, err
		}
		offDays = append(offDays, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOffDays - rows error: %v", ErrScanRow, err)
	}

	return offDays, nil
}

// CreateOffDay сохраняет правило выходного
// Повтор уже существующего правила возвращает ErrOffDayExists
func (r *Repository) CreateOffDay(ctx context.Context, day *domain.OffDay) (*domain.OffDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertOffDayQuery(day).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOffDay - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&day.ID, &createdAt); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrOffDayExists
		}
		return nil, fmt.Errorf("%w: CreateOffDay - execute insert: %v", ErrExecQuery, err)
	}
	day.CreatedAt = createdAt.Time

	return day, nil
}

// DeleteOffDay удаляет правило выходного
func (r *Repository) DeleteOffDay(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(offDaysTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteOffDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOffDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOffDay - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOffDayNotFound
	}

	return nil
}

func insertOffDayQuery(day *domain.OffDay) squirrel.InsertBuilder {
	var dayOfWeek, specificDate interface{}
	switch rule := day.Rule.(type) {
	case domain.WeeklyOffDay:
		dayOfWeek = rule.DayOfWeek
	case domain.SpecificOffDay:
		specificDate = rule.Date.Format(domain.DateFormat)
	}

	var kind domain.OffDayKind
	if day.Rule != nil {
		kind = day.Rule.Kind()
	}

	return psqlbuilder.Insert(offDaysTable).
		Columns("kind", "day_of_week", "specific_date", "description").
		Values(kind, dayOfWeek, specificDate, day.Description).
		Suffix("RETURNING id, created_at")
}

func scanOffDay(rows *sql.Rows) (*domain.OffDay, error) {
	var day domain.OffDay
	var kind string
	var dayOfWeek sql.NullInt64
	var specificDate, createdAt sql.NullTime

	if err := rows.Scan(&day.ID, &kind, &dayOfWeek, &specificDate, &day.Description, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: scanOffDay - scan row: %v", ErrScanRow, err)
	}
	day.CreatedAt = createdAt.Time

	switch domain.OffDayKind(kind) {
	case domain.OffDayWeekly:
		day.Rule = domain.WeeklyOffDay{DayOfWeek: int(dayOfWeek.Int64)}
	case domain.OffDaySpecific:
		day.Rule = domain.SpecificOffDay{Date: specificDate.Time}
	default:
		return nil, fmt.Errorf("%w: %q in row id=%d", ErrUnknownOffDayKind, kind, day.ID)
	}

	return &day, nil
}
