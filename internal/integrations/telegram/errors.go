package telegram

import "errors"

var (
	// ErrNotConfigured возвращается, когда токен бота не задан
	ErrNotConfigured = errors.New("telegram client: bot token is not configured")

	// ErrNoRecipient возвращается, когда получатель не указан
	ErrNoRecipient = errors.New("telegram client: recipient is empty")

	// ErrUnauthorized возвращается, когда Bot API отклонил токен
	ErrUnauthorized = errors.New("telegram client: bot token rejected")

	// ErrRateLimited возвращается, когда сообщение не дождалось своей очереди
	ErrRateLimited = errors.New("telegram client: rate limit wait aborted")

	// ErrSendFailed возвращается, когда Bot API не принял сообщение
	ErrSendFailed = errors.New("telegram client: send failed")
)
