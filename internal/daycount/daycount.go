// Package daycount counts the days between two calendar dates by walking
// years and months rather than converting to timestamps.
package daycount

// Count parses both "YYYY-MM-DD" strings and returns DayCount for them.
func Count(start, end string) int {
	return DayCount(Parse(start), Parse(end))
}

// DayCount returns the number of days between start and end. Callers are
// expected to pass end >= start; within a single month an inverted pair
// gives a negative result.
func DayCount(start, end CalendarDate) int {
	if start.Year == end.Year {
		if start.Month == end.Month {
			return end.Day - start.Day
		}
		return MonthSpan(start, end)
	}
	return YearSpan(start, end)
}

// MonthSpan counts days between two dates of the same year in different
// months. Both boundary days are included.
func MonthSpan(start, end CalendarDate) int {
	// spans of two months or less only add the boundary months
	if end.Month-start.Month <= 2 {
		return startMonthDays(start) + endMonthDays(end)
	}

	days := 0
	for m := start.Month; m <= end.Month; m++ {
		switch m {
		case start.Month:
			days += startMonthDays(start)
		case end.Month:
			days += endMonthDays(end)
		default:
			days += MonthLength(m, start.Year)
		}
	}
	return days
}

// YearSpan counts days between two dates in different years.
func YearSpan(start, end CalendarDate) int {
	if end.Year-start.Year <= 2 {
		return StartYearRemainder(start) + EndYearRemainder(end)
	}

	days := 0
	for y := start.Year; y <= end.Year; y++ {
		switch y {
		case start.Year:
			days += StartYearRemainder(start)
		case end.Year:
			days += EndYearRemainder(end)
		default:
			days += yearLength(y)
		}
	}
	return days
}

// StartYearRemainder counts days from d through December 31 of d.Year,
// including d itself.
func StartYearRemainder(d CalendarDate) int {
	days := 0
	for m := d.Month; m <= 12; m++ {
		if m == d.Month {
			days += startMonthDays(d)
			continue
		}
		days += MonthLength(m, d.Year)
	}
	return days
}

// EndYearRemainder counts days from January 1 of d.Year through d,
// including d itself.
func EndYearRemainder(d CalendarDate) int {
	days := 0
	for m := 1; m <= d.Month; m++ {
		if m == d.Month {
			days += endMonthDays(d)
			continue
		}
		days += MonthLength(m, d.Year)
	}
	return days
}

// days from d.Day to the last day of its month, inclusive
func startMonthDays(d CalendarDate) int {
	last := MonthLength(d.Month, d.Year)
	if d.Day > last {
		return 0
	}
	return last - d.Day + 1
}

func endMonthDays(d CalendarDate) int {
	if d.Day < 1 {
		return 0
	}
	return d.Day
}

func yearLength(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
