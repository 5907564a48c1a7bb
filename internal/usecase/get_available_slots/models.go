package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение свободных слотов
// Длительность берётся из DurationMinutes, затем из услуги по ID или названию, затем из настроек
type Request struct {
	Date            time.Time // Дата (без времени)
	ServiceID       *int64    // ID услуги (опционально)
	ServiceName     *string   // Название услуги (опционально)
	DurationMinutes *int      // Явная длительность (опционально)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Длительность, по которой считались слоты
	ServiceName     string    // Название услуги или "Appointment"
	OffDay          bool      // Дата попадает под правило выходного
	Slots           []Slot    // Свободные слоты по возрастанию начала
}

// Slot модель свободного интервала
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота
}
