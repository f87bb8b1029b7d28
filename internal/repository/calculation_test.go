package repository

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/arvindkinja/date-day-count/internal/domain"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a migrated database named by TEST_DATABASE_DSN.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCalculationRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewCalculationRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	saved, err := repo.Create(ctx, domain.Calculation{
		StartDate: "2023-01-01",
		EndDate:   "2023-12-31",
		Days:      365,
		Method:    "legacy",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	t.Cleanup(func() { db.Exec(`DELETE FROM calculations WHERE id = $1`, saved.ID) })

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 365, got.Days)
	assert.Equal(t, "2023-12-31", got.EndDate)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.List(ctx, domain.CalculationFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
