package adjust_points

import "github.com/m04kA/SMC-SalonService/internal/domain"

// DefaultReason причина изменения, если администратор её не указал
const DefaultReason = "Admin adjustment"

// Request модель запроса на установку баланса
type Request struct {
	CustomerID int64   // ID клиента
	NewPoints  int     // Новый баланс
	Reason     *string // Причина (опционально)
}

// Response модель ответа
// Entry равен nil, если баланс не изменился
type Response struct {
	Customer *domain.Customer
	Entry    *domain.PointsHistory
}
