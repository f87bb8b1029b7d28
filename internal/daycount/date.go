package daycount

import (
	"fmt"
	"strconv"
	"strings"
)

// CalendarDate is a year/month/day triple. Fields are not range checked.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Parse splits a "YYYY-MM-DD" string on hyphens. Missing or non-numeric
// segments become 0, so malformed input yields a meaningless date rather
// than an error.
func Parse(s string) CalendarDate {
	parts := strings.Split(s, "-")
	return CalendarDate{
		Year:  segment(parts, 0),
		Month: segment(parts, 1),
		Day:   segment(parts, 2),
	}
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return v
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsLeapYear applies the proleptic Gregorian rule to any integer year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MonthLength returns the number of days in month of year, or 0 for a month
// outside 1..12.
func MonthLength(month, year int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	return 0
}
