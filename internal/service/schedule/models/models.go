package models

import (
	"time"

	"github.com/klepi21/barberians/internal/domain"
)

// Request модели

// WeeklyHoursEntry одна запись недельного расписания
type WeeklyHoursEntry struct {
	Weekday   int    `json:"weekday"`   // 1=Понедельник .. 7=Воскресенье
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "17:00"
}

// UpdateWeeklyHoursRequest запрос на полную замену недельного расписания.
// Дни без записи считаются выходными.
type UpdateWeeklyHoursRequest struct {
	Hours []WeeklyHoursEntry `json:"hours"`
}

// UpsertOverrideRequest запрос на установку переопределения на дату.
// При closed=true часы игнорируются.
type UpsertOverrideRequest struct {
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	Closed    bool   `json:"closed"`
}

// AddBreakRequest запрос на добавление перерыва
type AddBreakRequest struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Response модели

// WeeklyHoursResponse недельное расписание целиком
type WeeklyHoursResponse struct {
	Hours []WeeklyHoursEntry `json:"hours"`
}

// OverrideResponse переопределение на дату
type OverrideResponse struct {
	Date      string `json:"date"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	Closed    bool   `json:"closed"`
}

// OverrideListResponse список переопределений
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// BreakResponse перерыв
type BreakResponse struct {
	ID        int64  `json:"id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BreakListResponse список перерывов
type BreakListResponse struct {
	Breaks []BreakResponse `json:"breaks"`
}

// ClearBreaksResponse результат очистки перерывов дня недели
type ClearBreaksResponse struct {
	Deleted int64 `json:"deleted"`
}

// Методы конвертации

// FromDomainWeeklyHours конвертирует недельное расписание в DTO
func FromDomainWeeklyHours(hours []domain.WeeklyHours) *WeeklyHoursResponse {
	resp := &WeeklyHoursResponse{
		Hours: make([]WeeklyHoursEntry, 0, len(hours)),
	}

	for _, wh := range hours {
		resp.Hours = append(resp.Hours, WeeklyHoursEntry{
			Weekday:   wh.Weekday,
			OpenTime:  wh.OpenTime.String(),
			CloseTime: wh.CloseTime.String(),
		})
	}

	return resp
}

// FromDomainOverride конвертирует переопределение в DTO
func FromDomainOverride(ov *domain.DateOverride) *OverrideResponse {
	if ov == nil {
		return nil
	}

	resp := &OverrideResponse{
		Date:   ov.Date.Format(domain.DateFormat),
		Closed: ov.Closed,
	}

	if !ov.Closed {
		resp.OpenTime = ov.OpenTime.String()
		resp.CloseTime = ov.CloseTime.String()
	}

	return resp
}

// FromDomainOverrideList конвертирует список переопределений в DTO
func FromDomainOverrideList(overrides []domain.DateOverride) *OverrideListResponse {
	resp := &OverrideListResponse{
		Overrides: make([]OverrideResponse, 0, len(overrides)),
	}

	for i := range overrides {
		resp.Overrides = append(resp.Overrides, *FromDomainOverride(&overrides[i]))
	}

	return resp
}

// FromDomainBreak конвертирует перерыв в DTO
func FromDomainBreak(br *domain.Break) *BreakResponse {
	if br == nil {
		return nil
	}

	return &BreakResponse{
		ID:        br.ID,
		Weekday:   br.Weekday,
		StartTime: br.StartTime.String(),
		EndTime:   br.EndTime.String(),
	}
}

// FromDomainBreakList конвертирует список перерывов в DTO
func FromDomainBreakList(breaks []domain.Break) *BreakListResponse {
	resp := &BreakListResponse{
		Breaks: make([]BreakResponse, 0, len(breaks)),
	}

	for i := range breaks {
		resp.Breaks = append(resp.Breaks, *FromDomainBreak(&breaks[i]))
	}

	return resp
}

// ParseDate парсит дату формата "2006-01-02"
func ParseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}
