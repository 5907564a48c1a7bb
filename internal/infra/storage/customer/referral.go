package customer

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

const referralsTable = "referrals"

// CreateReferral сохраняет приглашение в статусе pending
func (r *Repository) CreateReferral(ctx context.Context, ref *domain.Referral) (*domain.Referral, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(referralsTable).
		Columns("referrer_id", "referred_id", "referral_code", "status").
		Values(ref.ReferrerID, ref.ReferredID, ref.Code, ref.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReferral - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&ref.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateReferral - execute insert: %v", ErrExecQuery, err)
	}
	ref.CreatedAt = createdAt.Time

	return ref, nil
}

// GetPendingReferralByReferred ищет незавершённое приглашение приглашённого клиента
// Внутри транзакции строка блокируется, бонус начисляется не больше одного раза
func (r *Repository) GetPendingReferralByReferred(ctx context.Context, referredID int64) (*domain.Referral, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := pendingReferralQuery(referredID, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingReferralByReferred - build select query: %v", ErrBuildQuery, err)
	}

	var ref domain.Referral
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ref.ID,
		&ref.ReferrerID,
		&ref.ReferredID,
		&ref.Code,
		&ref.Status,
		&ref.CompletedAt,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReferralNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingReferralByReferred - scan referral: %v", ErrScanRow, err)
	}
	ref.CreatedAt = createdAt.Time

	return &ref, nil
}

// CompleteReferral переводит приглашение в completed
// Условие на статус не даёт завершить приглашение повторно
func (r *Repository) CompleteReferral(ctx context.Context, id int64, completedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(referralsTable).
		Set("status", domain.ReferralCompleted).
		Set("completed_at", completedAt).
		Where(squirrel.Eq{"id": id, "status": domain.ReferralPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CompleteReferral - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CompleteReferral - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CompleteReferral - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReferralNotFound
	}

	return nil
}

func pendingReferralQuery(referredID int64, lock bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"id",
		"referrer_id",
		"referred_id",
		"referral_code",
		"status",
		"completed_at",
		"created_at",
	).
		From(referralsTable).
		Where(squirrel.Eq{"referred_id": referredID, "status": domain.ReferralPending})

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}
