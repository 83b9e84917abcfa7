package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klepi21/barberians/internal/domain"
	scheduleRepo "github.com/klepi21/barberians/internal/infra/storage/schedule"
	"github.com/klepi21/barberians/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	weekly    []domain.WeeklyHours
	overrides map[string]*domain.DateOverride
	breaks    []domain.Break
	nextID    int64
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		overrides: make(map[string]*domain.DateOverride),
		nextID:    1,
	}
}

func (f *fakeScheduleRepo) GetWeeklyHours(context.Context) ([]domain.WeeklyHours, error) {
	return f.weekly, nil
}

func (f *fakeScheduleRepo) ReplaceWeeklyHours(_ context.Context, hours []domain.WeeklyHours) error {
	f.weekly = hours
	return nil
}

func (f *fakeScheduleRepo) GetOverrides(context.Context) ([]domain.DateOverride, error) {
	result := make([]domain.DateOverride, 0, len(f.overrides))
	for _, ov := range f.overrides {
		result = append(result, *ov)
	}
	return result, nil
}

func (f *fakeScheduleRepo) GetOverrideByDate(_ context.Context, date time.Time) (*domain.DateOverride, error) {
	ov, ok := f.overrides[date.Format(domain.DateFormat)]
	if !ok {
		return nil, scheduleRepo.ErrOverrideNotFound
	}
	return ov, nil
}

func (f *fakeScheduleRepo) UpsertOverride(_ context.Context, ov *domain.DateOverride) (*domain.DateOverride, error) {
	key := ov.Date.Format(domain.DateFormat)
	if existing, ok := f.overrides[key]; ok {
		ov.ID = existing.ID
	} else {
		ov.ID = f.nextID
		f.nextID++
	}
	f.overrides[key] = ov
	return ov, nil
}

func (f *fakeScheduleRepo) DeleteOverride(_ context.Context, date time.Time) error {
	key := date.Format(domain.DateFormat)
	if _, ok := f.overrides[key]; !ok {
		return scheduleRepo.ErrOverrideNotFound
	}
	delete(f.overrides, key)
	return nil
}

func (f *fakeScheduleRepo) GetBreaks(context.Context) ([]domain.Break, error) {
	return f.breaks, nil
}

func (f *fakeScheduleRepo) AddBreak(_ context.Context, br *domain.Break) (*domain.Break, error) {
	br.ID = f.nextID
	f.nextID++
	f.breaks = append(f.breaks, *br)
	return br, nil
}

func (f *fakeScheduleRepo) ClearBreaks(_ context.Context, weekday int) (int64, error) {
	kept := f.breaks[:0]
	var deleted int64
	for _, br := range f.breaks {
		if br.Weekday == weekday {
			deleted++
			continue
		}
		kept = append(kept, br)
	}
	f.breaks = kept
	return deleted, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo ScheduleRepository) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func TestService_UpdateWeeklyHours(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	resp, err := svc.UpdateWeeklyHours(context.Background(), &models.UpdateWeeklyHoursRequest{
		Hours: []models.WeeklyHoursEntry{
			{Weekday: 1, OpenTime: "09:00", CloseTime: "17:00"},
			{Weekday: 6, OpenTime: "10:00", CloseTime: "15:00"},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Hours, 2)
	assert.Equal(t, "09:00", resp.Hours[0].OpenTime)
	require.Len(t, repo.weekly, 2)
	assert.Equal(t, 6, repo.weekly[1].Weekday)
}

func TestService_UpdateWeeklyHours_Validation(t *testing.T) {
	tests := []struct {
		name    string
		hours   []models.WeeklyHoursEntry
		wantErr error
	}{
		{
			name:    "weekday out of range",
			hours:   []models.WeeklyHoursEntry{{Weekday: 0, OpenTime: "09:00", CloseTime: "17:00"}},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "weekday above sunday",
			hours:   []models.WeeklyHoursEntry{{Weekday: 8, OpenTime: "09:00", CloseTime: "17:00"}},
			wantErr: ErrInvalidWeekday,
		},
		{
			name: "duplicate weekday",
			hours: []models.WeeklyHoursEntry{
				{Weekday: 2, OpenTime: "09:00", CloseTime: "17:00"},
				{Weekday: 2, OpenTime: "10:00", CloseTime: "18:00"},
			},
			wantErr: ErrDuplicateWeekday,
		},
		{
			name:    "open equals close",
			hours:   []models.WeeklyHoursEntry{{Weekday: 3, OpenTime: "09:00", CloseTime: "09:00"}},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "unparsable time",
			hours:   []models.WeeklyHoursEntry{{Weekday: 3, OpenTime: "9am", CloseTime: "17:00"}},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeScheduleRepo())

			_, err := svc.UpdateWeeklyHours(context.Background(), &models.UpdateWeeklyHoursRequest{Hours: tt.hours})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpsertOverride(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	resp, err := svc.UpsertOverride(context.Background(), "2025-12-25", &models.UpsertOverrideRequest{Closed: true})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.OpenTime)

	// Повторный upsert на ту же дату обновляет запись, а не плодит вторую
	resp, err = svc.UpsertOverride(context.Background(), "2025-12-25", &models.UpsertOverrideRequest{
		OpenTime:  "10:00",
		CloseTime: "14:00",
	})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Len(t, repo.overrides, 1)
}

func TestService_UpsertOverride_OpenRequiresHours(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo())

	_, err := svc.UpsertOverride(context.Background(), "2025-12-25", &models.UpsertOverrideRequest{})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestService_UpsertOverride_InvalidDate(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo())

	_, err := svc.UpsertOverride(context.Background(), "25/12/2025", &models.UpsertOverrideRequest{Closed: true})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_GetOverride(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	_, err := svc.GetOverride(context.Background(), "2025-12-25")
	assert.ErrorIs(t, err, ErrOverrideNotFound)

	_, err = svc.UpsertOverride(context.Background(), "2025-12-25", &models.UpsertOverrideRequest{Closed: true})
	require.NoError(t, err)

	resp, err := svc.GetOverride(context.Background(), "2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", resp.Date)
	assert.True(t, resp.Closed)

	_, err = svc.GetOverride(context.Background(), "25/12/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_DeleteOverride(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	_, err := svc.UpsertOverride(context.Background(), "2025-12-25", &models.UpsertOverrideRequest{Closed: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOverride(context.Background(), "2025-12-25"))

	err = svc.DeleteOverride(context.Background(), "2025-12-25")
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestService_AddBreak(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	resp, err := svc.AddBreak(context.Background(), &models.AddBreakRequest{
		Weekday:   1,
		StartTime: "12:00",
		EndTime:   "13:00",
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "12:00", resp.StartTime)
}

func TestService_AddBreak_Validation(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo())

	_, err := svc.AddBreak(context.Background(), &models.AddBreakRequest{Weekday: 9, StartTime: "12:00", EndTime: "13:00"})
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.AddBreak(context.Background(), &models.AddBreakRequest{Weekday: 1, StartTime: "13:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestService_ClearBreaks(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo)

	for _, wd := range []int{1, 1, 2} {
		_, err := svc.AddBreak(context.Background(), &models.AddBreakRequest{
			Weekday:   wd,
			StartTime: "12:00",
			EndTime:   "13:00",
		})
		require.NoError(t, err)
	}

	resp, err := svc.ClearBreaks(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Deleted)
	require.Len(t, repo.breaks, 1)
	assert.Equal(t, 2, repo.breaks[0].Weekday)
}
