package schedule

import (
	"context"
	"time"

	"github.com/klepi21/barberians/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetWeeklyHours(ctx context.Context) ([]domain.WeeklyHours, error)
	ReplaceWeeklyHours(ctx context.Context, hours []domain.WeeklyHours) error
	GetOverrides(ctx context.Context) ([]domain.DateOverride, error)
	GetOverrideByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error)
	UpsertOverride(ctx context.Context, ov *domain.DateOverride) (*domain.DateOverride, error)
	DeleteOverride(ctx context.Context, date time.Time) error
	GetBreaks(ctx context.Context) ([]domain.Break, error)
	AddBreak(ctx context.Context, br *domain.Break) (*domain.Break, error)
	ClearBreaks(ctx context.Context, weekday int) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
