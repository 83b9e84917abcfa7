package get_breaks

import (
	"context"

	"github.com/klepi21/barberians/internal/service/schedule/models"
)

type ScheduleService interface {
	GetBreaks(ctx context.Context) (*models.BreakListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
