package create_booking

import (
	"time"

	"github.com/klepi21/barberians/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	Service     string           // Название услуги из прайс-листа
	Barber      *string          // Желаемый барбер; nil - любой свободный
	FullName    string
	PhoneNumber string
	Email       string
	Notes       *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Barber          string
	Status          string
	Service         string
	ServicePrice    float64
	FullName        string
	PhoneNumber     string
	Email           string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
