package add_break

import (
	"context"

	"github.com/klepi21/barberians/internal/service/schedule/models"
)

type ScheduleService interface {
	AddBreak(ctx context.Context, req *models.AddBreakRequest) (*models.BreakResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
