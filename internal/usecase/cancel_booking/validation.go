package cancel_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment_id must be positive", ErrInvalidInput)
	}
	switch req.Actor {
	case domain.ActorCustomer:
		if req.CustomerID <= 0 {
			return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
		}
	case domain.ActorAdmin:
	default:
		return fmt.Errorf("%w: unknown actor %q", ErrInvalidInput, req.Actor)
	}
	if req.Reason != nil && len([]rune(*req.Reason)) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}

// normalizeReason убирает пробелы, пустая причина превращается в nil
func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	r := strings.TrimSpace(*reason)
	if r == "" {
		return nil
	}
	return &r
}
