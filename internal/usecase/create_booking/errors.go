package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в прайсе
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBarberNotFound возвращается, когда барбер не найден в ростере
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrShopClosed возвращается, когда магазин закрыт в указанную дату
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	// в пределах рабочих часов или попадает в перерыв
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда на слот не осталось свободного
	// барбера - включая проигрыш гонки за последнее место
	ErrSlotNotAvailable = errors.New("create_booking: slot is no longer available")

	// ErrScheduleConfig возвращается при кривом недельном расписании на дату
	ErrScheduleConfig = errors.New("create_booking: schedule configuration is malformed")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("create_booking: storage unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
