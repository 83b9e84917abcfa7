package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrScheduleConfig возвращается, когда недельное расписание на запрошенный
	// день не удается распарсить. День с кривой конфигурацией - это ошибка,
	// а не выходной: молчаливо пустой список скрыл бы проблему от админа.
	ErrScheduleConfig = errors.New("schedule configuration is malformed")

	// ErrStoreUnavailable возвращается при недоступности хранилища.
	// Доступность в этом случае неизвестна - отвечать "все свободно" нельзя.
	ErrStoreUnavailable = errors.New("storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
