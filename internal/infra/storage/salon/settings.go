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

const settingsTable = "salon_settings"

// Repository репозиторий настроек салона и выходных дней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салона
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings получает единственную запись настроек
// Внутри транзакции строка блокируется: на ней сериализуется создание записей
func (r *Repository) GetSettings(ctx context.Context) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getSettingsQuery(dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SalonSettings
	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.BusinessName,
		&s.MaxDailyAppointments,
		&s.AppointmentDuration,
		&s.WorkingHoursStart,
		&s.WorkingHoursEnd,
		&s.BufferMinutes,
		&s.TelegramBotToken,
		&s.TelegramChatID,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// CreateSettings сохраняет настройки при первом запуске
func (r *Repository) CreateSettings(ctx context.Context, s *domain.SalonSettings) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(settingsTable).
		Columns(
			"business_name",
			"max_daily_appointments",
			"appointment_duration",
			"working_hours_start",
			"working_hours_end",
			"buffer_minutes",
			"telegram_bot_token",
			"telegram_chat_id",
		).
		Values(
			s.BusinessName,
			s.MaxDailyAppointments,
			s.AppointmentDuration,
			s.WorkingHoursStart,
			s.WorkingHoursEnd,
			s.BufferMinutes,
			s.TelegramBotToken,
			s.TelegramChatID,
		).
		Suffix("RETURNING id, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSettings - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateSettings - execute insert: %v", ErrExecQuery, err)
	}
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// UpdateSettings перезаписывает настройки
func (r *Repository) UpdateSettings(ctx context.Context, s *domain.SalonSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(settingsTable).
		Set("business_name", s.BusinessName).
		Set("max_daily_appointments", s.MaxDailyAppointments).
		Set("appointment_duration", s.AppointmentDuration).
		Set("working_hours_start", s.WorkingHoursStart).
		Set("working_hours_end", s.WorkingHoursEnd).
		Set("buffer_minutes", s.BufferMinutes).
		Set("telegram_bot_token", s.TelegramBotToken).
		Set("telegram_chat_id", s.TelegramChatID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

func getSettingsQuery(lock bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"id",
		"business_name",
		"max_daily_appointments",
		"appointment_duration",
		"working_hours_start",
		"working_hours_end",
		"buffer_minutes",
		"telegram_bot_token",
		"telegram_chat_id",
		"updated_at",
	).
		From(settingsTable).
		OrderBy("id ASC").
		Limit(1)

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}
