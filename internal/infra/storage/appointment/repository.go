package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"customer_id",
	"service_id",
	"service_name",
	"appointment_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"points_deducted",
	"status",
	"cancelled_at",
	"cancelled_by",
	"admin_cancelled",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
// Если на это время уже есть активная запись, уникальный индекс вернёт ErrSlotTaken
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"customer_id",
			"service_id",
			"service_name",
			"appointment_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"points_deducted",
			"status",
		).
		Values(
			apt.CustomerID,
			apt.ServiceID,
			apt.ServiceName,
			dateArg(apt.Date),
			apt.StartTime,
			apt.EndTime,
			apt.DurationMinutes,
			apt.PointsDeducted,
			apt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&apt.ID, &createdAt, &updatedAt)
	if err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется до её завершения
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getByIDQuery(id, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appointments[0], nil
}

// ListByDate возвращает записи на дату в указанных статусах по возрастанию времени начала
// Пустой список статусов означает все статусы
func (r *Repository) ListByDate(ctx context.Context, date time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listByDateQuery(date, statuses).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountByDate считает активные записи (pending, confirmed) на дату
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"appointment_date": dateArg(date)}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByDateRange считает активные записи по дням в диапазоне [from, to]
// Ключ результата - дата в формате YYYY-MM-DD, дни без записей в результат не попадают
func (r *Repository) CountByDateRange(ctx context.Context, from, to time.Time) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := countByDateRangeQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByDateRange - scan row: %v", ErrScanRow, err)
		}
		counts[date.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// ListByCustomer возвращает записи клиента, сначала новые
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	return r.ListWithFilter(ctx, domain.AppointmentFilter{CustomerID: &customerID})
}

// ListWithFilter возвращает записи с фильтрацией по периоду, статусу и клиенту
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listWithFilterQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Cancel сохраняет отмену записи: статус, время, инициатора и причину
func (r *Repository) Cancel(ctx context.Context, apt *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var cancelledBy *string
	if apt.CancelledBy != nil {
		by := string(*apt.CancelledBy)
		cancelledBy = &by
	}

	query, args, err := psqlbuilder.Update(table).
		Set("status", apt.Status).
		Set("cancelled_at", apt.CancelledAt).
		Set("cancelled_by", cancelledBy).
		Set("admin_cancelled", apt.AdminCancelled).
		Set("cancellation_reason", apt.CancellationReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": apt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// CountByService считает записи, ссылающиеся на услугу
func (r *Repository) CountByService(ctx context.Context, serviceID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByService - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByService - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func getByIDQuery(id int64, lock bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}

func listByDateQuery(date time.Time, statuses []domain.AppointmentStatus) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment_date": dateArg(date)}).
		OrderBy("start_time ASC")

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": statusStrings(statuses)})
	}
	return builder
}

func countByDateRangeQuery(from, to time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select("appointment_date", "COUNT(*)").
		From(table).
		Where(squirrel.GtOrEq{"appointment_date": dateArg(from)}).
		Where(squirrel.LtOrEq{"appointment_date": dateArg(to)}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		GroupBy("appointment_date")
}

func listWithFilterQuery(filter domain.AppointmentFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).From(table)

	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"appointment_date": dateArg(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"appointment_date": dateArg(*filter.EndDate)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return builder.OrderBy("appointment_date DESC", "start_time DESC")
}

// dateArg передаёт дату строкой, чтобы часовой пояс сессии не сдвинул её при приведении к DATE
func dateArg(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.CustomerID,
			&apt.ServiceID,
			&apt.ServiceName,
			&apt.Date,
			&apt.StartTime,
			&apt.EndTime,
			&apt.DurationMinutes,
			&apt.PointsDeducted,
			&apt.Status,
			&apt.CancelledAt,
			&apt.CancelledBy,
			&apt.AdminCancelled,
			&apt.CancellationReason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
