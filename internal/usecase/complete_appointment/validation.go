package complete_appointment

import "fmt"

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment_id must be positive", ErrInvalidInput)
	}
	return nil
}
