package register_customer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// normalize чистит поля запроса: пробелы, телефон, регистр кода
func normalize(req *Request) *Request {
	out := &Request{
		Name:     strings.TrimSpace(req.Name),
		Phone:    domain.CleanPhone(req.Phone),
		Password: req.Password,
	}
	if req.TelegramHandle != nil {
		if h := strings.TrimSpace(*req.TelegramHandle); h != "" {
			out.TelegramHandle = &h
		}
	}
	if req.ReferralCode != nil {
		if code := strings.ToUpper(strings.TrimSpace(*req.ReferralCode)); code != "" {
			out.ReferralCode = &code
		}
	}
	return out
}

// validateRequest проверяет нормализованный запрос
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if req.TelegramHandle != nil && !domain.IsChatID(*req.TelegramHandle) {
		return fmt.Errorf("%w: telegram handle must be a numeric chat id", ErrInvalidInput)
	}
	return nil
}
