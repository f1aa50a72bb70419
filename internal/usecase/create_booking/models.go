package create_booking

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/money"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// UserID = 0 означает неаутентифицированный запрос
type Request struct {
	UserID        int64            // ID пользователя из заголовка аутентификации
	ArenaID       int64            // ID арены
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	DurationHours int              // Длительность в часах, допустимо 1-4
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	Reference     string           // Публичный номер бронирования
	UserID        int64            // ID пользователя
	ArenaID       int64            // ID арены
	BookingDate   time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	DurationHours int              // Длительность в часах
	TotalPrice    money.Money      // Итоговая стоимость: ставка × часы
	Status        string           // Статус бронирования

	// Денормализованные данные
	ArenaName string  // Название арены
	UserName  *string // Имя пользователя
	UserEmail *string // Email пользователя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
