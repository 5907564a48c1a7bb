package domain

import (
	"errors"
	"time"
)

// ReferralStatus статус реферального приглашения
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

// ErrReferralCompleted возвращается при повторном завершении приглашения
var ErrReferralCompleted = errors.New("domain: referral already completed")

// Referral приглашение клиента по реферальному коду
type Referral struct {
	ID          int64
	ReferrerID  int64
	ReferredID  int64
	Code        string
	Status      ReferralStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// Complete переводит приглашение в completed, переход возможен один раз
func (r *Referral) Complete(at time.Time) error {
	if r.Status != ReferralPending {
		return ErrReferralCompleted
	}
	r.Status = ReferralCompleted
	r.CompletedAt = &at
	return nil
}
