package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNegativeBalance возвращается, когда изменение сделало бы баланс отрицательным
var ErrNegativeBalance = errors.New("domain: points balance cannot be negative")

// Customer клиент салона
type Customer struct {
	ID             int64
	Name           string
	Phone          string
	PasswordHash   string
	Points         int
	ReferralCode   string
	ReferredBy     *int64
	TelegramHandle *string // числовой chat id для уведомлений
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPointsFor проверяет, хватает ли баллов на списание cost
func (c *Customer) HasPointsFor(cost int) bool {
	return c.Points >= cost
}

// ApplyPoints изменяет баланс на diff и возвращает запись для истории баллов
// Баланс и история меняются только вместе
func (c *Customer) ApplyPoints(diff int, reason string, changedBy Actor) (*PointsHistory, error) {
	newPoints := c.Points + diff
	if newPoints < 0 {
		return nil, fmt.Errorf("%w: %d %+d", ErrNegativeBalance, c.Points, diff)
	}

	entry := &PointsHistory{
		CustomerID: c.ID,
		OldPoints:  c.Points,
		NewPoints:  newPoints,
		Difference: diff,
		Reason:     truncate(reason, MaxReasonLength),
		ChangedBy:  changedBy,
	}
	c.Points = newPoints
	return entry, nil
}

// NotificationHandle получатель уведомлений клиента или пустая строка
// Бот не может писать пользователю по @username, поэтому годится только числовой chat id
func (c *Customer) NotificationHandle() string {
	if c.TelegramHandle == nil {
		return ""
	}
	handle := strings.TrimSpace(*c.TelegramHandle)
	if !IsChatID(handle) {
		return ""
	}
	return handle
}

// IsChatID проверяет, что s - числовой id чата Telegram
func IsChatID(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// CleanPhone убирает пробелы, дефисы и скобки из номера телефона
func CleanPhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
