package get_override

import (
	"context"

	"github.com/klepi21/barberians/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOverride(ctx context.Context, dateStr string) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
