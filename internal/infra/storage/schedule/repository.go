package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/klepi21/barberians/internal/domain"
	"github.com/klepi21/barberians/pkg/psqlbuilder"
	"github.com/klepi21/barberians/pkg/txmanager"
)

// Repository репозиторий конфигурации расписания: недельные часы,
// переопределения на дату и перерывы
type Repository struct {
	db Executor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db Executor) *Repository {
	return &Repository{db: db}
}

// LoadConfig собирает полный снимок конфигурации расписания одним вызовом.
// Снимок отдается движку расчета доступности как есть: валидация отдельных
// строк - ответственность движка, а не хранилища.
func (r *Repository) LoadConfig(ctx context.Context) (domain.ScheduleConfig, error) {
	weekly, err := r.GetWeeklyHours(ctx)
	if err != nil {
		return domain.ScheduleConfig{}, err
	}

	overrides, err := r.GetOverrides(ctx)
	if err != nil {
		return domain.ScheduleConfig{}, err
	}

	breaks, err := r.GetBreaks(ctx)
	if err != nil {
		return domain.ScheduleConfig{}, err
	}

	return domain.ScheduleConfig{
		WeeklyHours: weekly,
		Overrides:   overrides,
		Breaks:      breaks,
	}, nil
}

// GetWeeklyHours возвращает недельное расписание, отсортированное по дню недели
func (r *Repository) GetWeeklyHours(ctx context.Context) ([]domain.WeeklyHours, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "open_time", "close_time", "created_at", "updated_at").
		From("working_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.WeeklyHours, 0)
	for rows.Next() {
		var wh domain.WeeklyHours
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(&wh.ID, &wh.Weekday, &wh.OpenTime, &wh.CloseTime, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyHours - scan row: %v", ErrScanRow, err)
		}

		wh.CreatedAt = createdAt.Time
		wh.UpdatedAt = updatedAt.Time
		result = append(result, wh)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ReplaceWeeklyHours атомарно заменяет недельное расписание целиком.
// Частичное обновление по дням не поддерживается намеренно: клиент всегда
// присылает полную неделю, что исключает рассинхронизацию дней.
func (r *Repository) ReplaceWeeklyHours(ctx context.Context, hours []domain.WeeklyHours) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err = executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("working_hours").
		Columns("weekday", "open_time", "close_time")

	for _, wh := range hours {
		insertBuilder = insertBuilder.Values(wh.Weekday, wh.OpenTime, wh.CloseTime)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err = executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetOverrides возвращает все переопределения на даты, ближайшие первыми
func (r *Repository) GetOverrides(ctx context.Context) ([]domain.DateOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "open_time", "close_time", "is_closed", "created_at", "updated_at").
		From("special_hours").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DateOverride, 0)
	for rows.Next() {
		ov, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverrides - scan row: %v", ErrScanRow, err)
		}
		result = append(result, *ov)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetOverrideByDate возвращает переопределение на конкретную дату
func (r *Repository) GetOverrideByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "open_time", "close_time", "is_closed", "created_at", "updated_at").
		From("special_hours").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrideByDate - build select query: %v", ErrBuildQuery, err)
	}

	ov, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrideByDate - scan row: %v", ErrScanRow, err)
	}

	return ov, nil
}

// UpsertOverride создает или обновляет переопределение на дату.
// На одну дату может существовать только одна запись (уникальный индекс),
// конфликт разрешается обновлением.
func (r *Repository) UpsertOverride(ctx context.Context, ov *domain.DateOverride) (*domain.DateOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("special_hours").
		Columns("date", "open_time", "close_time", "is_closed").
		Values(domain.DateOnly(ov.Date), ov.OpenTime, ov.CloseTime, ov.Closed).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ov.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - execute upsert: %v", ErrExecQuery, err)
	}

	ov.CreatedAt = createdAt.Time
	ov.UpdatedAt = updatedAt.Time

	return ov, nil
}

// DeleteOverride удаляет переопределение на дату, возвращая день
// недельному расписанию
func (r *Repository) DeleteOverride(ctx context.Context, date time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_hours").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// GetBreaks возвращает все перерывы, сгруппированные по дню недели
func (r *Repository) GetBreaks(ctx context.Context) ([]domain.Break, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "start_time", "end_time", "created_at", "updated_at").
		From("breaks").
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Break, 0)
	for rows.Next() {
		var br domain.Break
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(&br.ID, &br.Weekday, &br.StartTime, &br.EndTime, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBreaks - scan row: %v", ErrScanRow, err)
		}

		br.CreatedAt = createdAt.Time
		br.UpdatedAt = updatedAt.Time
		result = append(result, br)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// AddBreak добавляет перерыв на день недели. Пересечения с существующими
// перерывами допустимы: движок трактует их как объединение интервалов.
func (r *Repository) AddBreak(ctx context.Context, br *domain.Break) (*domain.Break, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("breaks").
		Columns("weekday", "start_time", "end_time").
		Values(br.Weekday, br.StartTime, br.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBreak - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&br.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: AddBreak - execute insert: %v", ErrExecQuery, err)
	}

	br.CreatedAt = createdAt.Time
	br.UpdatedAt = updatedAt.Time

	return br, nil
}

// ClearBreaks удаляет все перерывы указанного дня недели.
// Возвращает количество удаленных записей.
func (r *Repository) ClearBreaks(ctx context.Context, weekday int) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("breaks").
		Where(squirrel.Eq{"weekday": weekday}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ClearBreaks - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ClearBreaks - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ClearBreaks - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var ov domain.DateOverride
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&ov.ID, &ov.Date, &ov.OpenTime, &ov.CloseTime, &ov.Closed, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	ov.CreatedAt = createdAt.Time
	ov.UpdatedAt = updatedAt.Time

	return &ov, nil
}
