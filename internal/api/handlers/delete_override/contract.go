package delete_override

import "context"

type ScheduleService interface {
	DeleteOverride(ctx context.Context, dateStr string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
