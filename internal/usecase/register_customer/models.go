package register_customer

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на регистрацию
type Request struct {
	Name           string
	Phone          string
	Password       string
	TelegramHandle *string // числовой chat id Telegram (опционально)
	ReferralCode   *string // код пригласившего (опционально)
}

// Response модель ответа
type Response struct {
	Customer *domain.Customer
	Referrer *domain.Customer // nil, если регистрация без кода
}
