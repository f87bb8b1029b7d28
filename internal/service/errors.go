package service

import (
	"errors"
	"fmt"
)

var (
	ErrRequired          = errors.New("field is required")
	ErrInvalidDateFormat = errors.New("invalid date format (YYYY-MM-DD)")
	ErrDateRangeInverted = errors.New("end date is before start date")
	ErrHistoryDisabled   = errors.New("calculation history is disabled")
)

const (
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

var fieldLabels = map[string]string{
	FieldStartDate: "Start Date",
	FieldEndDate:   "End Date",
}

// FieldError ties a validation error to the form field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Message is the text shown next to the field in the form.
func (e *FieldError) Message() string {
	label := fieldLabels[e.Field]
	if label == "" {
		label = e.Field
	}

	switch {
	case errors.Is(e.Err, ErrRequired):
		return label + " field is required."
	case errors.Is(e.Err, ErrInvalidDateFormat):
		return label + " must be a date in YYYY-MM-DD format."
	case errors.Is(e.Err, ErrDateRangeInverted):
		return "End Date should be greater than Start Date."
	}
	return label + ": " + e.Err.Error()
}
