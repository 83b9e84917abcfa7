package clear_breaks

import (
	"context"

	"github.com/klepi21/barberians/internal/service/schedule/models"
)

type ScheduleService interface {
	ClearBreaks(ctx context.Context, weekday int) (*models.ClearBreaksResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
