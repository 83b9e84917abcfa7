package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда override на дату не найден
	ErrOverrideNotFound = errors.New("date override not found")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 1..7
	ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")

	// ErrInvalidTimeRange возвращается, когда границы интервала не парсятся
	// или начало не раньше конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrDuplicateWeekday возвращается, когда в недельном расписании
	// один день встречается дважды
	ErrDuplicateWeekday = errors.New("duplicate weekday in weekly hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
