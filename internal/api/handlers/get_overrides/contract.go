package get_overrides

import (
	"context"

	"github.com/klepi21/barberians/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOverrides(ctx context.Context) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
