package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/arvindkinja/date-day-count/internal/daycount"
	"github.com/arvindkinja/date-day-count/internal/domain"
	"github.com/arvindkinja/date-day-count/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	calcs     map[uuid.UUID]domain.Calculation
	created   []domain.Calculation
	lastLimit int
	err       error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{calcs: map[uuid.UUID]domain.Calculation{}}
}

func (f *fakeRepo) Create(_ context.Context, calc domain.Calculation) (*domain.Calculation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calcs[calc.ID] = calc
	f.created = append(f.created, calc)
	return &calc, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Calculation, error) {
	calc, ok := f.calcs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &calc, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error) {
	f.lastLimit = filter.Limit
	return f.created, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDayCountService(repo, daycount.MethodLegacy, testLogger())
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	calc, err := svc.Count(context.Background(), "2023-01-01", " 2023-01-31 ")
	require.NoError(t, err)

	assert.Equal(t, 30, calc.Days)
	assert.Equal(t, "2023-01-31", calc.EndDate)
	assert.Equal(t, "legacy", calc.Method)
	assert.NotEqual(t, uuid.Nil, calc.ID)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), calc.CreatedAt)
	require.Len(t, repo.created, 1)
	assert.Equal(t, calc.ID, repo.created[0].ID)
}

func TestCountMethods(t *testing.T) {
	legacy := NewDayCountService(nil, daycount.MethodLegacy, testLogger())
	calendar := NewDayCountService(nil, daycount.MethodCalendar, testLogger())

	calc, err := legacy.Count(context.Background(), "2020-01-01", "2020-03-01")
	require.NoError(t, err)
	assert.Equal(t, 32, calc.Days)

	calc, err = calendar.Count(context.Background(), "2020-01-01", "2020-03-01")
	require.NoError(t, err)
	assert.Equal(t, 60, calc.Days)
	assert.Equal(t, "calendar", calc.Method)
}

func TestCountValidation(t *testing.T) {
	svc := NewDayCountService(nil, daycount.MethodLegacy, testLogger())

	tests := []struct {
		name    string
		start   string
		end     string
		field   string
		wantErr error
		message string
	}{
		{"missing start", "", "2023-01-01", FieldStartDate, ErrRequired, "Start Date field is required."},
		{"missing end", "2023-01-01", "  ", FieldEndDate, ErrRequired, "End Date field is required."},
		{"bad start", "2023/01/01", "2023-01-02", FieldStartDate, ErrInvalidDateFormat, "Start Date must be a date in YYYY-MM-DD format."},
		{"impossible end", "2023-01-01", "2023-02-30", FieldEndDate, ErrInvalidDateFormat, "End Date must be a date in YYYY-MM-DD format."},
		{"inverted", "2023-05-01", "2023-04-30", FieldEndDate, ErrDateRangeInverted, "End Date should be greater than Start Date."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Count(context.Background(), tt.start, tt.end)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.message, fe.Message())
		})
	}
}

func TestCountRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewDayCountService(repo, daycount.MethodLegacy, testLogger())

	_, err := svc.Count(context.Background(), "2023-01-01", "2023-01-02")
	assert.ErrorIs(t, err, repo.err)
}

func TestHistory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDayCountService(repo, daycount.MethodLegacy, testLogger())

	calc, err := svc.Count(context.Background(), "2023-01-01", "2023-12-31")
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), calc.ID)
	require.NoError(t, err)
	assert.Equal(t, 365, got.Days)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	list, err := svc.List(context.Background(), domain.CalculationFilter{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 100, repo.lastLimit)
}

func TestHistoryDisabled(t *testing.T) {
	svc := NewDayCountService(nil, daycount.MethodLegacy, testLogger())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	_, err = svc.List(context.Background(), domain.CalculationFilter{})
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
