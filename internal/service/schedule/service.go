package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/klepi21/barberians/internal/domain"
	scheduleRepo "github.com/klepi21/barberians/internal/infra/storage/schedule"
	"github.com/klepi21/barberians/internal/service/schedule/models"
	"github.com/klepi21/barberians/pkg/types"
)

// Service сервис управления конфигурацией расписания
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeeklyHours возвращает недельное расписание
func (s *Service) GetWeeklyHours(ctx context.Context) (*models.WeeklyHoursResponse, error) {
	hours, err := s.scheduleRepo.GetWeeklyHours(ctx)
	if err != nil {
		s.logger.Error("GetWeeklyHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklyHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeeklyHours(hours), nil
}

// UpdateWeeklyHours полностью заменяет недельное расписание в транзакции.
// Каждая запись валидируется до записи в хранилище: движок доступности
// не должен встречать заведомо кривые недельные часы.
func (s *Service) UpdateWeeklyHours(ctx context.Context, req *models.UpdateWeeklyHoursRequest) (*models.WeeklyHoursResponse, error) {
	s.logger.Info("UpdateWeeklyHours: replacing weekly hours with %d entries", len(req.Hours))

	hours := make([]domain.WeeklyHours, 0, len(req.Hours))
	seen := make(map[int]bool, len(req.Hours))

	for _, entry := range req.Hours {
		if entry.Weekday < domain.MinWeekday || entry.Weekday > domain.MaxWeekday {
			s.logger.Warn("UpdateWeeklyHours: invalid weekday=%d", entry.Weekday)
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWeekday, entry.Weekday)
		}
		if seen[entry.Weekday] {
			s.logger.Warn("UpdateWeeklyHours: duplicate weekday=%d", entry.Weekday)
			return nil, fmt.Errorf("%w: weekday=%d", ErrDuplicateWeekday, entry.Weekday)
		}
		seen[entry.Weekday] = true

		open, close, err := parseTimeRange(entry.OpenTime, entry.CloseTime)
		if err != nil {
			s.logger.Warn("UpdateWeeklyHours: invalid range for weekday=%d: %v", entry.Weekday, err)
			return nil, err
		}

		hours = append(hours, domain.WeeklyHours{
			Weekday:   entry.Weekday,
			OpenTime:  open,
			CloseTime: close,
		})
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceWeeklyHours(ctx, hours)
	})
	if err != nil {
		s.logger.Error("UpdateWeeklyHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWeeklyHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklyHours: successfully replaced weekly hours")
	return models.FromDomainWeeklyHours(hours), nil
}

// GetOverrides возвращает все переопределения на даты
func (s *Service) GetOverrides(ctx context.Context) (*models.OverrideListResponse, error) {
	overrides, err := s.scheduleRepo.GetOverrides(ctx)
	if err != nil {
		s.logger.Error("GetOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetOverrides - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

// GetOverride возвращает переопределение на конкретную дату
func (s *Service) GetOverride(ctx context.Context, dateStr string) (*models.OverrideResponse, error) {
	date, err := models.ParseDate(dateStr)
	if err != nil {
		s.logger.Warn("GetOverride: invalid date=%s", dateStr)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, dateStr)
	}

	ov, err := s.scheduleRepo.GetOverrideByDate(ctx, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("GetOverride: repository error for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: GetOverride - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(ov), nil
}

// UpsertOverride устанавливает переопределение на дату.
// closed=true делает день выходным независимо от часов; иначе часы
// обязательны и валидируются.
func (s *Service) UpsertOverride(ctx context.Context, dateStr string, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error) {
	date, err := models.ParseDate(dateStr)
	if err != nil {
		s.logger.Warn("UpsertOverride: invalid date=%s", dateStr)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, dateStr)
	}

	s.logger.Info("UpsertOverride: setting override for date=%s, closed=%v", dateStr, req.Closed)

	ov := &domain.DateOverride{
		Date:   date,
		Closed: req.Closed,
	}

	if !req.Closed {
		open, close, err := parseTimeRange(req.OpenTime, req.CloseTime)
		if err != nil {
			s.logger.Warn("UpsertOverride: invalid range for date=%s: %v", dateStr, err)
			return nil, err
		}
		ov.OpenTime = open
		ov.CloseTime = close
	}

	ov, err = s.scheduleRepo.UpsertOverride(ctx, ov)
	if err != nil {
		s.logger.Error("UpsertOverride: repository error for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: successfully set override id=%d for date=%s", ov.ID, dateStr)
	return models.FromDomainOverride(ov), nil
}

// DeleteOverride снимает переопределение, возвращая дату недельному расписанию
func (s *Service) DeleteOverride(ctx context.Context, dateStr string) error {
	date, err := models.ParseDate(dateStr)
	if err != nil {
		s.logger.Warn("DeleteOverride: invalid date=%s", dateStr)
		return fmt.Errorf("%w: %s", ErrInvalidDate, dateStr)
	}

	s.logger.Info("DeleteOverride: removing override for date=%s", dateStr)

	if err := s.scheduleRepo.DeleteOverride(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: override for date=%s not found", dateStr)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for date=%s: %v", dateStr, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetBreaks возвращает все перерывы
func (s *Service) GetBreaks(ctx context.Context) (*models.BreakListResponse, error) {
	breaks, err := s.scheduleRepo.GetBreaks(ctx)
	if err != nil {
		s.logger.Error("GetBreaks: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBreaks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBreakList(breaks), nil
}

// AddBreak добавляет перерыв на день недели
func (s *Service) AddBreak(ctx context.Context, req *models.AddBreakRequest) (*models.BreakResponse, error) {
	if req.Weekday < domain.MinWeekday || req.Weekday > domain.MaxWeekday {
		s.logger.Warn("AddBreak: invalid weekday=%d", req.Weekday)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWeekday, req.Weekday)
	}

	start, end, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("AddBreak: invalid range for weekday=%d: %v", req.Weekday, err)
		return nil, err
	}

	s.logger.Info("AddBreak: adding break weekday=%d %s-%s", req.Weekday, start, end)

	br, err := s.scheduleRepo.AddBreak(ctx, &domain.Break{
		Weekday:   req.Weekday,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		s.logger.Error("AddBreak: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBreak - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBreak: successfully added break id=%d", br.ID)
	return models.FromDomainBreak(br), nil
}

// ClearBreaks удаляет все перерывы указанного дня недели
func (s *Service) ClearBreaks(ctx context.Context, weekday int) (*models.ClearBreaksResponse, error) {
	if weekday < domain.MinWeekday || weekday > domain.MaxWeekday {
		s.logger.Warn("ClearBreaks: invalid weekday=%d", weekday)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWeekday, weekday)
	}

	s.logger.Info("ClearBreaks: clearing breaks for weekday=%d", weekday)

	deleted, err := s.scheduleRepo.ClearBreaks(ctx, weekday)
	if err != nil {
		s.logger.Error("ClearBreaks: repository error for weekday=%d: %v", weekday, err)
		return nil, fmt.Errorf("%w: ClearBreaks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearBreaks: deleted %d breaks for weekday=%d", deleted, weekday)
	return &models.ClearBreaksResponse{Deleted: deleted}, nil
}

// parseTimeRange парсит и валидирует пару границ "HH:MM".
// Начало обязано быть строго раньше конца.
func parseTimeRange(startStr, endStr string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, startStr, err)
	}

	end, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, endStr, err)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: %s is not before %s", ErrInvalidTimeRange, start, end)
	}

	return start, end, nil
}
