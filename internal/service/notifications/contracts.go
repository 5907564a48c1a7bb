package notifications

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SettingsRepository источник токена бота и канала администратора
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.SalonSettings, error)
}

// Sender отправитель сообщений в Telegram
type Sender interface {
	Send(ctx context.Context, token, chatID, text string) error
}

// Metrics счётчик отправленных уведомлений
type Metrics interface {
	NotificationSent(ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
