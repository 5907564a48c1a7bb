package adjust_points

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}
	if req.NewPoints < 0 {
		return ErrInvalidPoints
	}
	if req.Reason != nil && len([]rune(*req.Reason)) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}

func reasonOrDefault(reason *string) string {
	if reason == nil || strings.TrimSpace(*reason) == "" {
		return DefaultReason
	}
	return strings.TrimSpace(*reason)
}
