package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Calculation is one answered day count request.
type Calculation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StartDate string    `json:"start_date" db:"start_date"`
	EndDate   string    `json:"end_date" db:"end_date"`
	Days      int       `json:"days" db:"days"`
	Method    string    `json:"method" db:"method"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type DayCountRequest struct {
	StartDate string `json:"start_date" example:"2023-01-01"`
	EndDate   string `json:"end_date" example:"2023-12-31"`
}

type CalculationFilter struct {
	Limit  int
	Offset int
}

// Message is the sentence shown to the user after a successful count.
func (c Calculation) Message() string {
	return fmt.Sprintf("The number of days between %s and %s is %d.", c.StartDate, c.EndDate, c.Days)
}
