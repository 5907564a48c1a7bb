package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
// Услуга определяется по ServiceID, затем по ServiceName, иначе берётся длительность из настроек
type Request struct {
	CustomerID  int64            // ID клиента
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	ServiceID   *int64           // ID услуги (опционально)
	ServiceName *string          // Название услуги (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment   *domain.Appointment // Созданная запись
	PointsBalance int                 // Баланс клиента после списания
}
