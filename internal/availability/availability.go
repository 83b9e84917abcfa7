// Package availability реализует чистый расчет доступных слотов.
// Никакого состояния и обращений к часам: текущее время передается снаружи.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/klepi21/barberians/internal/domain"
	"github.com/klepi21/barberians/pkg/types"
)

var (
	// ErrConfigParse возвращается, когда недельное расписание на запрошенный
	// день не удается распарсить. Такой день считается ошибкой, а не выходным,
	// чтобы кривая запись в конфигурации не "закрывала" магазин молча.
	ErrConfigParse = errors.New("availability: malformed weekly hours")

	// ErrEmptyRoster возвращается при пустом списке барберов
	ErrEmptyRoster = errors.New("availability: barber roster is empty")
)

// RowError описывает строку конфигурации, исключенную из расчета.
// Одна битая запись override или break не должна ронять весь день.
type RowError struct {
	Kind  string // "override" или "break"
	RowID int64
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("availability: skipped %s row id=%d: %v", e.Kind, e.RowID, e.Err)
}

// Window операционное окно магазина на конкретную дату
type Window struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// ResolveWindow вычисляет операционное окно на дату из слоев конфигурации.
// Приоритет: override на дату (включая явный closed) > недельное расписание.
// Отсутствие записи на день недели означает выходной.
func ResolveWindow(date time.Time, cfg domain.ScheduleConfig) (Window, []RowError, error) {
	var rowErrs []RowError

	// 1. Override на конкретную дату полностью заменяет недельное расписание
	for _, ov := range cfg.Overrides {
		if !domain.SameDay(ov.Date, date) {
			continue
		}

		if ov.Closed {
			return Window{Closed: true}, rowErrs, nil
		}

		if err := validateRange(ov.OpenTime, ov.CloseTime); err != nil {
			// Битый override исключаем и падаем обратно на недельное расписание
			rowErrs = append(rowErrs, RowError{Kind: "override", RowID: ov.ID, Err: err})
			break
		}

		return Window{Open: ov.OpenTime, Close: ov.CloseTime}, rowErrs, nil
	}

	// 2. Недельное расписание по ISO дню недели (Пн=1 .. Вс=7)
	weekday := domain.ISOWeekday(date)
	for _, wh := range cfg.WeeklyHours {
		if wh.Weekday != weekday {
			continue
		}

		if err := validateRange(wh.OpenTime, wh.CloseTime); err != nil {
			return Window{}, rowErrs, fmt.Errorf("%w: weekday=%d: %v", ErrConfigParse, weekday, err)
		}

		return Window{Open: wh.OpenTime, Close: wh.CloseTime}, rowErrs, nil
	}

	// 3. Записи нет - выходной
	return Window{Closed: true}, rowErrs, nil
}

// ComputeAvailableSlots возвращает упорядоченный список слотов со свободными
// местами на дату. Учитывает операционное окно, перерывы, прошедшее время
// (только для сегодняшней даты) и занятость по барберам.
func ComputeAvailableSlots(
	date time.Time,
	barbers []string,
	cfg domain.ScheduleConfig,
	bookings []*domain.Booking,
	now time.Time,
) ([]domain.AvailableSlot, []RowError, error) {
	if len(barbers) == 0 {
		return nil, nil, ErrEmptyRoster
	}

	window, rowErrs, err := ResolveWindow(date, cfg)
	if err != nil {
		return nil, rowErrs, err
	}
	if window.Closed {
		return []domain.AvailableSlot{}, rowErrs, nil
	}

	// Шаг 1: сетка слотов с фиксированным шагом, строго до закрытия
	grid := generateGrid(window)

	// Шаг 2: для сегодняшней даты отбрасываем слоты, начавшиеся не позже now.
	// Для любых других дат (включая прошедшие) правило не применяется.
	if domain.SameDay(date, now) {
		nowTime := types.NewTimeString(now)
		filtered := grid[:0]
		for _, slot := range grid {
			if slot.IsAfter(nowTime) {
				filtered = append(filtered, slot)
			}
		}
		grid = filtered
	}

	// Шаг 3: исключаем перерывы. Границы включительно с обеих сторон:
	// слот, начинающийся ровно в начале или конце перерыва, исключается.
	grid, breakErrs := dropBreakSlots(grid, date, cfg.Breaks)
	rowErrs = append(rowErrs, breakErrs...)

	// Шаг 4: занятость по точному совпадению начала в пределах сетки.
	// Бронирование длиннее одного интервала резервирует все накрытые слоты.
	occupied := occupiedByStart(date, bookings)

	slots := make([]domain.AvailableSlot, 0, len(grid))
	for _, start := range grid {
		free := subtractOccupied(barbers, occupied[start])
		if len(free) == 0 {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: domain.SlotIntervalMinutes,
			AvailableSpots:  len(free),
			TotalSpots:      len(barbers),
			FreeBarbers:     free,
		})
	}

	return slots, rowErrs, nil
}

// FreeBarbers возвращает барберов, не занятых на указанном слоте в указанную
// дату. Пустой результат означает, что слот полностью занят и показывать его
// клиенту нельзя.
func FreeBarbers(date time.Time, slot types.TimeString, barbers []string, bookings []*domain.Booking) []string {
	occupied := occupiedByStart(date, bookings)
	return subtractOccupied(barbers, occupied[slot])
}

// generateGrid строит сетку кандидатов: от открытия с шагом SlotIntervalMinutes,
// пока начало слота строго раньше закрытия
func generateGrid(window Window) []types.TimeString {
	grid := make([]types.TimeString, 0)

	cur := window.Open
	for cur.IsBefore(window.Close) {
		grid = append(grid, cur)

		next, err := cur.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			// Уперлись в полночь
			break
		}
		cur = next
	}

	return grid
}

// dropBreakSlots исключает слоты, попадающие в перерывы на день недели даты.
// Битые записи перерывов пропускаются и возвращаются как RowError.
func dropBreakSlots(grid []types.TimeString, date time.Time, breaks []domain.Break) ([]types.TimeString, []RowError) {
	weekday := domain.ISOWeekday(date)

	var rowErrs []RowError
	active := make([]domain.Break, 0, len(breaks))
	for _, br := range breaks {
		if br.Weekday != weekday {
			continue
		}
		if err := validateRange(br.StartTime, br.EndTime); err != nil {
			rowErrs = append(rowErrs, RowError{Kind: "break", RowID: br.ID, Err: err})
			continue
		}
		active = append(active, br)
	}

	if len(active) == 0 {
		return grid, rowErrs
	}

	filtered := grid[:0]
	for _, slot := range grid {
		if !inAnyBreak(slot, active) {
			filtered = append(filtered, slot)
		}
	}

	return filtered, rowErrs
}

// inAnyBreak проверяет попадание слота в [start, end] любого перерыва,
// границы включительно
func inAnyBreak(slot types.TimeString, breaks []domain.Break) bool {
	for _, br := range breaks {
		if !slot.IsBefore(br.StartTime) && !slot.IsAfter(br.EndTime) {
			return true
		}
	}
	return false
}

// occupiedByStart раскладывает активные бронирования даты по накрытым слотам
// сетки: начало брони плюс каждый следующий интервал в пределах длительности
func occupiedByStart(date time.Time, bookings []*domain.Booking) map[types.TimeString]map[string]bool {
	occupied := make(map[types.TimeString]map[string]bool)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if !domain.SameDay(b.Date, date) {
			continue
		}

		start := b.StartTime
		for i := 0; i < b.SpanSlots(); i++ {
			if occupied[start] == nil {
				occupied[start] = make(map[string]bool)
			}
			occupied[start][b.Barber] = true

			next, err := start.AddMinutes(domain.SlotIntervalMinutes)
			if err != nil {
				break
			}
			start = next
		}
	}

	return occupied
}

// subtractOccupied возвращает барберов ростера, не попавших в occupied,
// сохраняя порядок ростера
func subtractOccupied(barbers []string, occupied map[string]bool) []string {
	free := make([]string, 0, len(barbers))
	for _, barber := range barbers {
		if !occupied[barber] {
			free = append(free, barber)
		}
	}
	return free
}

// validateRange проверяет, что обе границы парсятся и open строго раньше close
func validateRange(open, close types.TimeString) error {
	if err := open.Validate(); err != nil {
		return err
	}
	if err := close.Validate(); err != nil {
		return err
	}
	if !open.IsBefore(close) {
		return fmt.Errorf("open %s is not before close %s", open, close)
	}
	return nil
}
