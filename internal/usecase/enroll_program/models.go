package enroll_program

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/money"
)

// Request модель запроса на зачисление в программу
// UserID = 0 означает неаутентифицированный запрос
type Request struct {
	UserID    int64 // ID пользователя из заголовка аутентификации
	ProgramID int64 // ID программы
}

// Response модель ответа с созданным зачислением
type Response struct {
	ID        int64       // ID созданного зачисления
	Reference string      // Публичный номер зачисления
	ProgramID int64       // ID программы
	UserID    int64       // ID пользователя
	Status    string      // Статус зачисления
	Price     money.Money // Фиксированная цена программы

	// Денормализованные данные
	ProgramTitle string // Название программы
	SpotsLeft    int    // Осталось мест после зачисления

	EnrolledAt time.Time // Время зачисления
	CreatedAt  time.Time // Время создания записи
}
