package service

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-\d{2}$`)

func isInvalidDate(dateStr string) bool {
	if !dateRegex.MatchString(dateStr) {
		return true
	}

	_, err := time.Parse(dateLayout, dateStr)
	return err != nil
}

// validateRange checks the raw form values. Ordering is decided on the
// strings themselves, which sort chronologically in YYYY-MM-DD form.
func validateRange(start, end string) error {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)

	if start == "" {
		return &FieldError{Field: FieldStartDate, Err: ErrRequired}
	}
	if end == "" {
		return &FieldError{Field: FieldEndDate, Err: ErrRequired}
	}
	if isInvalidDate(start) {
		return &FieldError{Field: FieldStartDate, Err: ErrInvalidDateFormat}
	}
	if isInvalidDate(end) {
		return &FieldError{Field: FieldEndDate, Err: ErrInvalidDateFormat}
	}
	if end < start {
		return &FieldError{Field: FieldEndDate, Err: ErrDateRangeInverted}
	}
	return nil
}
