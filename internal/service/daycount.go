package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arvindkinja/date-day-count/internal/daycount"
	"github.com/arvindkinja/date-day-count/internal/domain"
	"github.com/arvindkinja/date-day-count/internal/repository"
	"github.com/google/uuid"
)

type DayCountServiceInterface interface {
	Count(ctx context.Context, startDate, endDate string) (*domain.Calculation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)
	List(ctx context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error)
}

type DayCountService struct {
	repo   repository.CalculationInterface
	method daycount.Method
	log    *slog.Logger
	now    func() time.Time
}

var _ DayCountServiceInterface = (*DayCountService)(nil)

// NewDayCountService builds the service. A nil repo disables history.
func NewDayCountService(repo repository.CalculationInterface, method daycount.Method, log *slog.Logger) *DayCountService {
	return &DayCountService{
		repo:   repo,
		method: method,
		log:    log.With(slog.String("component", "service")),
		now:    time.Now,
	}
}

func (s *DayCountService) Count(ctx context.Context, startDate, endDate string) (*domain.Calculation, error) {
	const op = "service.DayCount.Count"

	if err := validateRange(startDate, endDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)

	calc := domain.Calculation{
		ID:        uuid.New(),
		StartDate: startDate,
		EndDate:   endDate,
		Days:      s.method.Count(daycount.Parse(startDate), daycount.Parse(endDate)),
		Method:    s.method.String(),
		CreatedAt: s.now().UTC(),
	}

	if s.repo != nil {
		saved, err := s.repo.Create(ctx, calc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		calc = *saved
	}

	s.log.Info("days counted",
		slog.String("start_date", calc.StartDate),
		slog.String("end_date", calc.EndDate),
		slog.Int("days", calc.Days),
		slog.String("method", calc.Method),
	)
	return &calc, nil
}

func (s *DayCountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	const op = "service.DayCount.GetByID"

	if s.repo == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrHistoryDisabled)
	}

	calc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return calc, nil
}

func (s *DayCountService) List(ctx context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error) {
	const op = "service.DayCount.List"

	if s.repo == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrHistoryDisabled)
	}

	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	calcs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return calcs, nil
}
