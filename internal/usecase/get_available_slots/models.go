package get_available_slots

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ArenaID int64     // ID арены
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ArenaID int64     // ID арены
	Date    time.Time // Дата, на которую запрашивались слоты
	Slots   []Slot    // Свободные слоты в хронологическом порядке
}

// Slot модель часового слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах (всегда 60)
}
