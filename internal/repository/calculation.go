package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arvindkinja/date-day-count/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("calculation not found")

type CalculationInterface interface {
	Create(ctx context.Context, calc domain.Calculation) (*domain.Calculation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)
	List(ctx context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error)
}

type CalculationRepository struct {
	db  *sql.DB
	log *slog.Logger
}

var _ CalculationInterface = (*CalculationRepository)(nil)

func NewCalculationRepository(db *sql.DB, log *slog.Logger) *CalculationRepository {
	return &CalculationRepository{
		db:  db,
		log: log.With(slog.String("component", "repository")),
	}
}

// Create stores calc, assigning an id when it has none.
func (r *CalculationRepository) Create(ctx context.Context, calc domain.Calculation) (*domain.Calculation, error) {
	const op = "repository.postgres.Create"
	query := `INSERT INTO calculations(id, start_date, end_date, days, method)
	VALUES($1, $2, $3, $4, $5)
	RETURNING created_at`

	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query, calc.ID, calc.StartDate, calc.EndDate, calc.Days, calc.Method).
		Scan(&calc.CreatedAt)
	if err != nil {
		r.log.Error("failed to create calculation", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &calc, nil
}

func (r *CalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	const op = "repository.postgres.GetByID"
	query := `
	SELECT id, start_date, end_date, days, method, created_at FROM calculations
	WHERE id=$1`

	var calc domain.Calculation
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&calc.ID,
		&calc.StartDate,
		&calc.EndDate,
		&calc.Days,
		&calc.Method,
		&calc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		r.log.Error("failed to get calculation",
			slog.String("op", op),
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &calc, nil
}

// List returns calculations newest first.
func (r *CalculationRepository) List(ctx context.Context, filter domain.CalculationFilter) ([]domain.Calculation, error) {
	const op = "repository.postgres.List"

	query := `SELECT id, start_date, end_date, days, method, created_at
              FROM calculations
              ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	args := []interface{}{limit}
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to get list", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	calcs := []domain.Calculation{}
	for rows.Next() {
		var calc domain.Calculation
		if err := rows.Scan(&calc.ID, &calc.StartDate, &calc.EndDate, &calc.Days, &calc.Method, &calc.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		calcs = append(calcs, calc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return calcs, nil
}
