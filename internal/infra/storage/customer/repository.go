package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const (
	table = "customers"

	phoneConstraint        = "uq_customers_phone"
	referralCodeConstraint = "uq_customers_referral_code"
)

var columns = []string{
	"id",
	"name",
	"phone",
	"password_hash",
	"points",
	"referral_code",
	"referred_by",
	"telegram_handle",
	"created_at",
	"updated_at",
}

// Repository репозиторий клиентов и реферальных приглашений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового клиента
// Занятый телефон возвращает ErrPhoneExists, совпавший реферальный код - ErrReferralCodeExists
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"phone",
			"password_hash",
			"points",
			"referral_code",
			"referred_by",
			"telegram_handle",
		).
		Values(
			c.Name,
			c.Phone,
			c.PasswordHash,
			c.Points,
			c.ReferralCode,
			c.ReferredBy,
			c.TelegramHandle,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			switch psqlbuilder.ConstraintName(err) {
			case phoneConstraint:
				return nil, ErrPhoneExists
			case referralCodeConstraint:
				return nil, ErrReferralCodeExists
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает клиента по ID
// Внутри транзакции строка блокируется, чтобы изменения баланса не терялись
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPhone получает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByPhone", squirrel.Eq{"phone": phone})
}

// GetByReferralCode получает клиента по его реферальному коду
func (r *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByReferralCode", squirrel.Eq{"referral_code": code})
}

// ExistsReferralCode проверяет, занят ли реферальный код
func (r *Repository) ExistsReferralCode(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"referral_code": code}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsReferralCode - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsReferralCode - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// List возвращает всех клиентов, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// UpdatePoints записывает новый баланс клиента
func (r *Repository) UpdatePoints(ctx context.Context, id int64, points int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("points", points).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePoints - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePoints - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePoints - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectOneQuery(where, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrCustomerNotFound
	}

	return customers[0], nil
}

func selectOneQuery(where squirrel.Eq, lock bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		Limit(1)

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}

// scanCustomers сканирует результаты запроса в слайс клиентов
func scanCustomers(rows *sql.Rows) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0)

	for rows.Next() {
		var c domain.Customer
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Phone,
			&c.PasswordHash,
			&c.Points,
			&c.ReferralCode,
			&c.ReferredBy,
			&c.TelegramHandle,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCustomers - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCustomers - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}
